package usecase

import (
	"context"
	"testing"
	"time"

	"teleradiology-api/internal/domain/entity"

	"github.com/stretchr/testify/suite"
)

type DashboardUsecaseSuite struct {
	suite.Suite
	*fixture
	ctx     context.Context
	usecase DashboardUsecase
}

func TestDashboardUsecaseSuite(t *testing.T) {
	suite.Run(t, new(DashboardUsecaseSuite))
}

func (s *DashboardUsecaseSuite) SetupTest() {
	s.fixture = newFixture(s.T())
	s.ctx = context.Background()
	s.usecase = NewDashboardUsecase(s.db, s.log, s.userRepo, s.contentRepo, s.contactRepo, s.appRepo, s.leadRepo, s.store, time.Minute)
}

func (s *DashboardUsecaseSuite) addContact(subject string) {
	s.Require().NoError(s.contactRepo.Create(s.db, &entity.Contact{
		Name:    "Pat",
		Email:   "pat@example.com",
		Subject: subject,
		Message: "Please call me about coverage",
	}))
}

func (s *DashboardUsecaseSuite) TestGetStats_CachedUntilTTL() {
	// Arrange
	s.addContact("First")

	// Act
	first, err := s.usecase.GetStats(s.ctx)
	s.Require().NoError(err)
	s.addContact("Second")
	cached, err := s.usecase.GetStats(s.ctx)
	s.Require().NoError(err)
	s.redis.FastForward(time.Minute + time.Second)
	fresh, err := s.usecase.GetStats(s.ctx)
	s.Require().NoError(err)

	// Assert
	s.EqualValues(1, first.Contacts.Total)
	s.EqualValues(1, cached.Contacts.Total)
	s.EqualValues(2, fresh.Contacts.Total)
	s.NotNil(fresh.Users)
	s.NotNil(fresh.Content)
	s.NotNil(fresh.Applications)
	s.NotNil(fresh.Leads)
}

func (s *DashboardUsecaseSuite) TestGetRecent_LimitsAndSkipsSpam() {
	for i := 0; i < 7; i++ {
		s.addContact("Coverage")
	}
	s.Require().NoError(s.contactRepo.Create(s.db, &entity.Contact{
		Name: "Bot", Email: "bot@example.com", Subject: "Casino winner", Message: "buy now cheap viagra",
	}))

	recent, err := s.usecase.GetRecent(s.ctx)

	s.Require().NoError(err)
	s.Len(recent.Contacts, 5)
	for _, c := range recent.Contacts {
		s.False(c.IsSpam)
	}
	s.Empty(recent.Applications)
	s.Empty(recent.Leads)
}
