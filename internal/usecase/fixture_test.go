package usecase

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"teleradiology-api/config"
	domainRepo "teleradiology-api/internal/domain/repository"
	"teleradiology-api/internal/repository"
	"teleradiology-api/internal/service"
	"teleradiology-api/internal/testutil"
	"teleradiology-api/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// fixture wires every usecase dependency against SQLite and miniredis.
type fixture struct {
	db     *gorm.DB
	log    *logrus.Logger
	redis  *miniredis.Miniredis
	store  service.KeyValueStore
	mailer *captureMailer
	audit  service.AuditService
	jwt    *jwt.JWTService

	userRepo    domainRepo.UserRepository
	contentRepo domainRepo.ContentRepository
	contactRepo domainRepo.ContactRepository
	appRepo     domainRepo.ApplicationRepository
	leadRepo    domainRepo.SalesLeadRepository
	auditRepo   domainRepo.AuditLogRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client, mr := testutil.NewRedis(t)
	log := testutil.NewLogger()
	auditRepo := repository.NewAuditLogRepository()

	return &fixture{
		db:     testutil.NewDB(t),
		log:    log,
		redis:  mr,
		store:  service.NewRedisStore(client),
		mailer: &captureMailer{},
		audit:  service.NewAuditService(log, auditRepo),
		jwt: jwt.NewJWTService(config.JWTConfig{
			Secret:        "access-secret",
			RefreshSecret: "refresh-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
		}),
		userRepo:    repository.NewUserRepository(),
		contentRepo: repository.NewContentRepository(),
		contactRepo: repository.NewContactRepository(),
		appRepo:     repository.NewApplicationRepository(),
		leadRepo:    repository.NewSalesLeadRepository(),
		auditRepo:   auditRepo,
	}
}

func (f *fixture) countAudit(action string) int64 {
	var n int64
	f.db.Table("audit_logs").Where("action = ?", action).Count(&n)
	return n
}

type captureMailer struct {
	mu   sync.Mutex
	sent []service.MailMessage
}

func (m *captureMailer) Send(_ context.Context, msg service.MailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *captureMailer) last() (service.MailMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return service.MailMessage{}, false
	}
	return m.sent[len(m.sent)-1], true
}

func (m *captureMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

var tokenPattern = regexp.MustCompile(`token=([0-9a-f]{64})`)

// linkToken pulls the one-time token out of a rendered email.
func linkToken(msg service.MailMessage) string {
	m := tokenPattern.FindStringSubmatch(msg.HTML)
	if m == nil {
		return ""
	}
	return m[1]
}
