package model

import (
	"strings"

	"github.com/secmon-lab/refacto/pkg/domain/types"
)

// Event is a validated webhook event. The concrete type is one of
// *PushEvent, *PingEvent, *InstallationEvent or *AppAuthorizationEvent.
type Event interface {
	EventType() types.EventType
	Sender() types.GitHubAccountID
	isEvent()
}

// WebhookMeta carries delivery headers shared by all events.
type WebhookMeta struct {
	DeliveryID types.DeliveryID
	SenderID   types.GitHubAccountID
}

func (x WebhookMeta) Sender() types.GitHubAccountID { return x.SenderID }

// PushEvent is a push to a branch. Account is resolved by the validator.
type PushEvent struct {
	WebhookMeta
	Ref            string
	RepoID         types.GitHubRepoID
	Owner          string
	RepoName       string
	HeadCommitID   types.CommitSHA
	InstallationID types.GitHubAppInstallID

	Account *Account
}

func (x *PushEvent) EventType() types.EventType { return types.EventPush }
func (x *PushEvent) isEvent()                   {}

// Branch returns the last path segment of the ref.
func (x *PushEvent) Branch() types.BranchName {
	parts := strings.Split(x.Ref, "/")
	return types.BranchName(parts[len(parts)-1])
}

func (x *PushEvent) Repo() GitHubRepo {
	return GitHubRepo{RepoID: x.RepoID, Owner: x.Owner, RepoName: x.RepoName}
}

type PingEvent struct {
	WebhookMeta
	HookID int64
	Zen    string
}

func (x *PingEvent) EventType() types.EventType { return types.EventPing }
func (x *PingEvent) isEvent()                   {}

type InstallationEvent struct {
	WebhookMeta
	Action         string
	InstallationID types.GitHubAppInstallID
}

func (x *InstallationEvent) EventType() types.EventType { return types.EventInstallation }
func (x *InstallationEvent) isEvent()                   {}

type AppAuthorizationEvent struct {
	WebhookMeta
	Action string
}

func (x *AppAuthorizationEvent) EventType() types.EventType { return types.EventAppAuthorization }
func (x *AppAuthorizationEvent) isEvent()                   {}

// GateState is the outcome of evaluating a push against the configuration.
type GateState string

const (
	GateIgnored       GateState = "ignored"
	GateNotConfigured GateState = "not_configured"
	GateArmed         GateState = "armed"
	GateFired         GateState = "fired"
)

// GateDecision is produced for every push that passed validation.
type GateDecision struct {
	State GateState
	// Counter is the pre-increment commit number. Zero unless armed or fired.
	Counter      int
	MaxLines     int
	TargetBranch types.BranchName
}

func (x *GateDecision) Fired() bool {
	return x != nil && x.State == GateFired
}

// EventResult is the synchronous outcome of handling a webhook event. When
// Decision has fired, Push is handed to the refactor pipeline.
type EventResult struct {
	Type      types.EventType
	Duplicate bool
	Push      *PushEvent
	Decision  *GateDecision
}
