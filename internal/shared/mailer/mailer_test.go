package mailer

import (
	"strings"
	"testing"
)

func TestComposeStaffDecisionApproved(t *testing.T) {
	subject, body := ComposeStaffDecision("Ben Wick", "grower", "approved", "", "ben.wick.a1b2c3", "secret123456")

	if !strings.Contains(subject, "approved") {
		t.Errorf("Expected approval subject, got %q", subject)
	}
	for _, want := range []string{"Ben Wick", "grower", "ben.wick.a1b2c3", "secret123456"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
}

func TestComposeStaffDecisionRejected(t *testing.T) {
	subject, body := ComposeStaffDecision("Ben Wick", "grower", "rejected", "position filled", "", "")

	if strings.Contains(subject, "approved") {
		t.Errorf("Expected rejection subject, got %q", subject)
	}
	if !strings.Contains(body, "position filled") {
		t.Error("Expected the rejection reason in the body")
	}
	if strings.Contains(body, "Username") || strings.Contains(body, "Password") {
		t.Error("Expected no credentials in a rejection mail")
	}
}

func TestComposeEscapesHTML(t *testing.T) {
	_, body := ComposeStaffDecision("<script>alert(1)</script>", "grower", "rejected", "<b>no</b>", "", "")
	if strings.Contains(body, "<script>") {
		t.Error("Expected applicant name escaped")
	}
	if strings.Contains(body, "<b>no</b>") {
		t.Error("Expected reason escaped")
	}
}

func TestComposeOrderStatus(t *testing.T) {
	subject, body := ComposeOrderStatus("Ann", "ord-123", "shipped")
	if !strings.Contains(subject, "ord-123") || !strings.Contains(subject, "shipped") {
		t.Errorf("Expected order id and status in subject, got %q", subject)
	}
	if !strings.Contains(body, "Ann") {
		t.Error("Expected customer name in body")
	}
}
