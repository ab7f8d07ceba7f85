package service

import (
	"context"
	"testing"

	"teleradiology-api/config"
	"teleradiology-api/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestNewMailer_FallsBackToLog(t *testing.T) {
	m := NewMailer(config.SMTPConfig{}, testutil.NewLogger())
	_, ok := m.(*logMailer)
	assert.True(t, ok)
	assert.NoError(t, m.Send(context.Background(), VerificationMessage("a@b.co", "Ann", "http://x")))
}

func TestPasswordResetMessage_EscapesName(t *testing.T) {
	msg := PasswordResetMessage("a@b.co", "<script>", "https://site/reset?token=abc")
	assert.Equal(t, []string{"a@b.co"}, msg.To)
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "https://site/reset?token=abc")
}
