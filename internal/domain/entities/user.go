package entities

// Profile is the support-side view of an authenticated user. GameUUID and
// MemberCode are opaque identifiers issued by the game backend; either may
// be empty for accounts that never linked a game profile.
type Profile struct {
	ID          int64
	DiscordID   string
	DisplayName string
	Email       string
	GameUUID    string
	MemberCode  string
}
