package release_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfs/update-version/pkg/project"
	"github.com/agentfs/update-version/pkg/release"
)

func TestComponents(t *testing.T) {
	comps := release.Components()
	require.Len(t, comps, 4)

	byName := map[string]release.Component{}
	for _, c := range comps {
		byName[c.Name] = c
	}

	assert.Equal(t, "cli/Cargo.toml", byName["cli"].VersionFile)
	assert.Equal(t, "sandbox/Cargo.toml", byName["sandbox"].VersionFile)
	assert.Equal(t, "sdk/rust/Cargo.toml", byName["sdk/rust"].VersionFile)
	assert.Equal(t, "sdk/typescript/package.json", byName["sdk/typescript"].VersionFile)

	assert.Equal(t, project.TypeCargo, byName["cli"].Type)
	assert.Equal(t, project.TypeCargo, byName["sandbox"].Type)
	assert.Equal(t, project.TypeCargo, byName["sdk/rust"].Type)
	assert.Equal(t, project.TypeNode, byName["sdk/typescript"].Type)

	// Exactly one component gets the post-loop lock refresh.
	var relock []string
	for _, c := range comps {
		if c.RelockAfterAll {
			relock = append(relock, c.Name)
		}
	}
	assert.Equal(t, []string{"cli"}, relock)
}

func TestCommitMessageAndTag(t *testing.T) {
	assert.Equal(t, "AgentFS 1.2.3", release.CommitMessage("1.2.3"))
	assert.Equal(t, "v1.2.3", release.TagName("1.2.3"))
	assert.Equal(t, "v0.1.0-pre.1", release.TagName("0.1.0-pre.1"))
}
