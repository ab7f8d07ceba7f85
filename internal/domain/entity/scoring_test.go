package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpamScore(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		message string
		want    int
	}{
		{"empty", "", "", 0},
		{"legit inquiry", "Coverage question", "We need overnight teleradiology services for our hospital", 0},
		{"all spam", "Casino winner", "buy now cheap viagra", 100},
		{"half spam", "hello there", "bitcoin lottery hello world", 50},
		{"benign subject does not dilute message", "Inquiry", "casino loan hello world", 50},
		{"subject spam adds hits", "casino", "hello world there friend", 25},
		{"subject alone is not scored", "casino winner", "", 0},
		{"phrase words count", "Question", "seo services for you today", 40},
		{"partial phrase does not count", "services", "for seo", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpamScore(tt.subject, tt.message))
		})
	}
}

func TestSpamScore_LinkBonus(t *testing.T) {
	links := strings.Repeat("see https://example.com/a ", 4)
	base := SpamScore("Question", "hello")
	assert.Zero(t, base)

	score := SpamScore("Question", links)
	assert.Equal(t, 20, score)

	capped := SpamScore("casino", "viagra "+links)
	assert.LessOrEqual(t, capped, 100)
}

func TestLeadScore_TopTierIsNinety(t *testing.T) {
	l := &SalesLead{
		Industry:    IndustryHealthcare,
		CompanySize: CompanySizeEnterprise,
		Budget:      BudgetOver1M,
		Timeline:    TimelineImmediate,
		Source:      SourceReferral,
		Phone:       "+1 555 0100",
		Website:     "https://clinic.example",
	}
	assert.Equal(t, 90, LeadScore(l))
}

func TestLeadScore_UnknownValuesAddNothing(t *testing.T) {
	l := &SalesLead{Industry: "space", CompanySize: "huge", Source: "pigeon"}
	assert.Equal(t, 0, LeadScore(l))
}

func TestLeadScore_Mixed(t *testing.T) {
	l := &SalesLead{
		Industry:    IndustryClinic,
		CompanySize: CompanySizeSmall,
		Budget:      Budget50kTo100k,
		Timeline:    TimelineExploring,
		Source:      SourceWebsite,
	}
	assert.Equal(t, 12+5+10+2+7, LeadScore(l))
}

func TestContact_PrepareFlagsSpam(t *testing.T) {
	c := &Contact{Subject: "Casino winner", Message: "buy now cheap viagra"}
	c.Prepare(time.Now())

	assert.True(t, c.IsSpam)
	assert.Equal(t, ContactStatusSpam, c.Status)
	assert.Equal(t, 100, c.SpamScore)
	assert.Equal(t, PriorityMedium, c.Priority)
}

func TestContact_PrepareFlagsHalfSpamMessageUnderBenignSubject(t *testing.T) {
	c := &Contact{Subject: "Inquiry", Message: "casino loan hello world"}
	c.Prepare(time.Now())

	assert.Equal(t, 50, c.SpamScore)
	assert.True(t, c.IsSpam)
	assert.Equal(t, ContactStatusSpam, c.Status)
}

func TestContact_PrepareLegit(t *testing.T) {
	c := &Contact{Email: " Ops@Hospital.ORG", Subject: "Night coverage", Message: "Looking for overnight reads of CT studies"}
	c.Prepare(time.Now())

	assert.False(t, c.IsSpam)
	assert.Equal(t, ContactStatusNew, c.Status)
	assert.Equal(t, "ops@hospital.org", c.Email)
	assert.Equal(t, InquiryGeneral, c.InquiryType)
}

func TestContact_ResolvedAtStampedOnce(t *testing.T) {
	first := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	c := &Contact{Subject: "Billing", Message: "Invoice question", Status: ContactStatusResolved}
	c.Prepare(first)
	require.NotNil(t, c.ResolvedAt)

	c.Prepare(first.Add(time.Hour))
	assert.Equal(t, first, *c.ResolvedAt)
}

func TestContact_AgeInDays(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := &Contact{CreatedAt: created}
	assert.Equal(t, 3, c.AgeInDays(created.Add(3*24*time.Hour+time.Hour)))
	assert.Equal(t, 0, c.AgeInDays(created.Add(-time.Hour)))
}

func TestApplication_Transitions(t *testing.T) {
	reviewer := uuid.New()
	now := time.Now()
	a := &RadiologistApplication{FirstName: "Grace", LastName: "Hopper"}
	assert.Equal(t, "Grace Hopper", a.FullName())

	a.MarkUnderReview(reviewer, now)
	assert.Equal(t, ApplicationStatusUnderReview, a.Status)
	assert.Equal(t, &reviewer, a.ReviewedByID)

	assert.False(t, a.Reject(reviewer, "   ", now))
	assert.Equal(t, ApplicationStatusUnderReview, a.Status)

	assert.True(t, a.Reject(reviewer, "License expired", now))
	assert.Equal(t, ApplicationStatusRejected, a.Status)
	assert.Equal(t, "License expired", a.RejectionReason)

	a.Approve(reviewer, "Great fit", now)
	assert.Equal(t, ApplicationStatusApproved, a.Status)
	assert.Empty(t, a.RejectionReason)
	assert.Equal(t, "Great fit", a.ReviewNotes)

	a.Hold(reviewer, "", now)
	assert.Equal(t, ApplicationStatusOnHold, a.Status)
	assert.Equal(t, "Great fit", a.ReviewNotes)
}

func TestSalesLead_Transitions(t *testing.T) {
	rep := uuid.New()
	manager := uuid.New()
	now := time.Now()
	l := &SalesLead{CompanyName: "Acme Imaging", EstimatedValue: decimal.NewFromInt(-5), Probability: 140}
	l.Prepare()

	assert.Equal(t, LeadStatusNew, l.Status)
	assert.Equal(t, SourceWebsite, l.Source)
	assert.True(t, l.EstimatedValue.IsZero())
	assert.Equal(t, 100, l.Probability)

	l.Assign(rep, manager, now)
	assert.Equal(t, &rep, l.AssignedToID)

	l.SetStatus(LeadStatusContacted, rep, now)
	assert.NotNil(t, l.LastContactedAt)
	l.SetStatus(LeadStatusContacted, rep, now)

	l.Qualify(manager, "", now)
	assert.Equal(t, LeadStatusQualified, l.Status)
	assert.NotNil(t, l.QualifiedAt)

	l.Close(true, manager, "Signed 3 year deal", now)
	assert.Equal(t, LeadStatusClosedWon, l.Status)
	assert.True(t, l.Status.IsClosed())
	assert.Equal(t, 100, l.Probability)

	require.Len(t, l.Notes, 4)
	assert.Equal(t, LeadNoteAssignment, l.Notes[0].Type)
	assert.Equal(t, LeadNoteStatusChange, l.Notes[1].Type)
	assert.Equal(t, LeadNoteQualification, l.Notes[2].Type)
	assert.Equal(t, "Lead closed as won: Signed 3 year deal", l.Notes[3].Text)
}
