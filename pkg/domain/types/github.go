package types

import (
	"log/slog"
	"strings"
)

type (
	GitHubAccountID     int64
	GitHubRepoID        int64
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubClientID      string
	GitHubClientSecret  string
	GitHubToken         string
	GitHubAppPrivateKey string
	WebhookSecret       string
	BranchName          string
	CommitSHA           string
	DeliveryID          string
	EventType           string
)

const (
	EventPush             EventType = "push"
	EventPing             EventType = "ping"
	EventInstallation     EventType = "installation"
	EventAppAuthorization EventType = "github_app_authorization"
)

// AcceptedEventTypes lists webhook event types handled by the service. Only
// push drives a refactor; the others are acknowledged.
var AcceptedEventTypes = []EventType{
	EventPush,
	EventPing,
	EventInstallation,
	EventAppAuthorization,
}

func (x EventType) Accepted() bool {
	for _, t := range AcceptedEventTypes {
		if t == x {
			return true
		}
	}
	return false
}

// RefactorBranchMarker is embedded in every branch created by the service.
// Branches carrying it are never treated as sources.
const RefactorBranchMarker = "refactored-by-re-facto"

func (x BranchName) IsRefactorBranch() bool {
	return strings.Contains(string(x), RefactorBranchMarker)
}

func (x BranchName) String() string {
	return string(x)
}

func (x GitHubClientSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubClientSecret) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}
