package version_test

import (
	"encoding/json"
	"strings"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-openai/pkg/version"
	assert "github.com/stretchr/testify/assert"
)

func Test_version_001(t *testing.T) {
	assert := assert.New(t)
	version.GitTag = "v1.2.3"
	defer func() { version.GitTag = "" }()

	assert.Equal("v1.2.3", version.Version())
	assert.True(strings.HasPrefix(version.UserAgent(), "go-openai/v1.2.3 ("))

	var metadata map[string]string
	if assert.NoError(json.Unmarshal(version.JSON("openai"), &metadata)) {
		assert.Equal("openai", metadata["name"])
		assert.Equal("v1.2.3", metadata["version"])
		assert.Equal("v1.2.3", metadata["tag"])
		assert.NotEmpty(metadata["compiler"])
	}
}

func Test_version_002(t *testing.T) {
	assert := assert.New(t)
	version.GitBranch = "main"
	defer func() { version.GitBranch = "" }()
	assert.Equal("main", version.Version())
}
