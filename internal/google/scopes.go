package google

// DefaultOAuthScopes are the Google OAuth scopes required for folder
// replication. Full Drive access is needed because the engine creates
// folders, copies files and writes identity tag files in the destination
// tree.
var DefaultOAuthScopes = []string{
	// Google Drive scope
	"https://www.googleapis.com/auth/drive",
}
