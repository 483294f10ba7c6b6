// file: utils/sanitize_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "AlphaTeam", SanitizeName("Alpha Team"))
	assert.Equal(t, "Team_Rocket-2", SanitizeName("Team_Rocket-2!"))
	assert.Equal(t, "DanaONeil", SanitizeName("Dana O'Neil"))
	assert.Equal(t, "", SanitizeName("!!!"))
}

func TestSanitizeFileNameKeepsExtension(t *testing.T) {
	assert.Equal(t, "cert.pdf", SanitizeFileName("cert.pdf"))
	assert.Equal(t, "myresume.pdf", SanitizeFileName("my resume.pdf"))
	assert.Equal(t, "notes_v2.final.md", SanitizeFileName("notes_v2.final.md"))
}

func TestIsNameSafe(t *testing.T) {
	assert.True(t, IsNameSafe("Concept_Note"))
	assert.True(t, IsNameSafe("Résumé"))
	assert.False(t, IsNameSafe(""))
	assert.False(t, IsNameSafe("   "))
	assert.False(t, IsNameSafe("a/b"))
	assert.False(t, IsNameSafe(`a\b`))
}
