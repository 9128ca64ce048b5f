package release

import "github.com/agentfs/update-version/pkg/project"

// Component is one versioned sub-project of the monorepo. All paths are
// relative to the repository root.
type Component struct {
	Name        string
	VersionFile string
	LockDir     string
	Type        project.Type

	// RelockAfterAll marks the component whose lock file is regenerated a
	// second time once every manifest has been updated, so its path
	// dependencies pick up the sibling version bumps the first pass could
	// not see.
	RelockAfterAll bool
}

// Components returns the static registry of versioned sub-projects. The
// set is fixed; there is no discovery.
func Components() []Component {
	return []Component{
		// Rust crates
		{
			Name:           "cli",
			VersionFile:    "cli/Cargo.toml",
			LockDir:        "cli",
			Type:           project.TypeCargo,
			RelockAfterAll: true,
		},
		{
			Name:        "sandbox",
			VersionFile: "sandbox/Cargo.toml",
			LockDir:     "sandbox",
			Type:        project.TypeCargo,
		},
		{
			Name:        "sdk/rust",
			VersionFile: "sdk/rust/Cargo.toml",
			LockDir:     "sdk/rust",
			Type:        project.TypeCargo,
		},
		// TypeScript SDK
		{
			Name:        "sdk/typescript",
			VersionFile: "sdk/typescript/package.json",
			LockDir:     "sdk/typescript",
			Type:        project.TypeNode,
		},
	}
}

// CommitMessage returns the fixed release commit message for a version.
func CommitMessage(version string) string {
	return "AgentFS " + version
}

// TagName returns the release tag for a version.
func TagName(version string) string {
	return "v" + version
}
