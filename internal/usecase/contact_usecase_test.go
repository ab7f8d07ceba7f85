package usecase

import (
	"context"
	"testing"

	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/testutil"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ContactUsecaseSuite struct {
	suite.Suite
	*fixture
	ctx     context.Context
	usecase ContactUsecase
	support *entity.User
}

func TestContactUsecaseSuite(t *testing.T) {
	suite.Run(t, new(ContactUsecaseSuite))
}

func (s *ContactUsecaseSuite) SetupTest() {
	s.fixture = newFixture(s.T())
	s.ctx = context.Background()
	s.usecase = NewContactUsecase(s.db, s.log, s.contactRepo, s.userRepo, s.audit, s.mailer)
	s.support = testutil.CreateUser(s.T(), s.db, "support@example.com", entity.RoleSupport)
}

func (s *ContactUsecaseSuite) submit(subject, message string) *dto.ContactReceipt {
	res, err := s.usecase.CreateContact(s.ctx, &dto.CreateContactRequest{
		Name:    "Pat Clinic",
		Email:   "pat@clinic.example",
		Subject: subject,
		Message: message,
	}, RequestMeta{IPAddress: "203.0.113.7", UserAgent: "test-agent"})
	s.Require().NoError(err)
	return res
}

func (s *ContactUsecaseSuite) TestCreateContact_LegitimateInquiryIsAcknowledged() {
	receipt := s.submit("Overnight coverage", "We need overnight CT reads for our emergency department")

	s.Equal(1, s.mailer.count())
	got, err := s.usecase.GetContact(s.ctx, receipt.ID)
	s.Require().NoError(err)
	s.Equal(string(entity.ContactStatusNew), got.Status)
	s.Equal("website", got.Source)
	s.Equal("203.0.113.7", got.IPAddress)
	s.False(got.IsSpam)
}

func (s *ContactUsecaseSuite) TestCreateContact_SpamIsFlaggedAndHidden() {
	// Arrange
	legit := s.submit("Billing question", "Can you send last month's invoice again please")

	// Act
	spam := s.submit("Casino winner", "buy now cheap viagra")

	// Assert
	got, err := s.usecase.GetContact(s.ctx, spam.ID)
	s.Require().NoError(err)
	s.True(got.IsSpam)
	s.Equal(string(entity.ContactStatusSpam), got.Status)
	s.Equal(1, s.mailer.count())

	page := pagination.Params{Page: 1, Limit: 10, Sort: "created_at", Desc: true}
	list, total, err := s.usecase.GetAllContacts(s.ctx, entity.ContactFilter{}, page)
	s.Require().NoError(err)
	s.EqualValues(1, total)
	s.Equal(legit.ID, list[0].ID)

	_, total, err = s.usecase.GetAllContacts(s.ctx, entity.ContactFilter{Status: entity.ContactStatusSpam}, page)
	s.Require().NoError(err)
	s.EqualValues(1, total)

	stats, err := s.usecase.GetStats(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(2, stats.Total)
	s.EqualValues(1, stats.Spam)
}

func (s *ContactUsecaseSuite) TestAssignContact() {
	receipt := s.submit("Partnership", "We would like to discuss a reading partnership")
	admin := testutil.CreateUser(s.T(), s.db, "admin@example.com", entity.RoleAdmin)

	got, err := s.usecase.AssignContact(s.ctx, admin.ID, receipt.ID, &dto.AssignRequest{AssignedTo: s.support.ID})

	s.Require().NoError(err)
	s.Equal(string(entity.ContactStatusInProgress), got.Status)
	s.Require().NotNil(got.AssignedTo)
	s.Equal(s.support.ID, got.AssignedTo.ID)
	s.Require().Len(got.InternalNotes, 1)
	s.EqualValues(1, s.countAudit(entity.AuditActionContactAssign))

	_, err = s.usecase.AssignContact(s.ctx, admin.ID, receipt.ID, &dto.AssignRequest{AssignedTo: uuid.New()})
	s.ErrorIs(err, ErrAssigneeNotFound)

	customer := testutil.CreateUser(s.T(), s.db, "customer@example.com", entity.RoleUser)
	_, err = s.usecase.AssignContact(s.ctx, admin.ID, receipt.ID, &dto.AssignRequest{AssignedTo: customer.ID})
	s.ErrorIs(err, ErrAssigneeNotFound)
}

func (s *ContactUsecaseSuite) TestUpdateStatusNotesAndDelete() {
	receipt := s.submit("Support", "Our viewer cannot open the last study")

	resolved, err := s.usecase.UpdateStatus(s.ctx, s.support.ID, receipt.ID, &dto.UpdateContactStatusRequest{Status: "resolved", Priority: "high"})
	s.Require().NoError(err)
	s.Equal("resolved", resolved.Status)
	s.Equal("high", resolved.Priority)
	s.NotNil(resolved.ResolvedAt)

	noted, err := s.usecase.AddNote(s.ctx, s.support.ID, receipt.ID, &dto.AddNoteRequest{Text: "Called back"})
	s.Require().NoError(err)
	s.Require().Len(noted.InternalNotes, 1)
	s.Equal("Called back", noted.InternalNotes[0].Text)

	s.Require().NoError(s.usecase.DeleteContact(s.ctx, s.support.ID, receipt.ID))
	_, err = s.usecase.GetContact(s.ctx, receipt.ID)
	s.ErrorIs(err, ErrContactNotFound)
}
