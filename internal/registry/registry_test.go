package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_caseInsensitiveLookup(t *testing.T) {
	reg, err := Parse(strings.NewReader(sampleXML))
	require.NoError(t, err)

	for _, name := range []string{"SIMO", "simo", "Simo", "sImO"} {
		_, ok := reg.App(name)
		assert.True(t, ok, "lookup %q", name)
	}

	table, _ := reg.App("simo")
	for _, num := range []string{"V4.2", "v4.2"} {
		_, ok := table.Version(num)
		assert.True(t, ok, "lookup %q", num)
	}
}

func TestRegistry_preservesDocumentOrder(t *testing.T) {
	doc := `<Root>
		<Application Name="Zebra"><Version VersionNumber="V1"/></Application>
		<Application Name="Alpha"><Version VersionNumber="V3"/><Version VersionNumber="V1"/><Version VersionNumber="V2"/></Application>
	</Root>`

	reg, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"zebra", "alpha"}, reg.Names())
	table, _ := reg.App("alpha")
	assert.Equal(t, []string{"v3", "v1", "v2"}, table.Numbers())
}

func TestVersionTable_Default(t *testing.T) {
	doc := `<Root><Application Name="App">
		<Version VersionNumber="V1" IsDefault="false"/>
		<Version VersionNumber="V2" IsDefault="true"/>
		<Version VersionNumber="V3" IsDefault="false"/>
	</Application></Root>`

	reg, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	table, _ := reg.App("app")
	def, ok := table.Default()
	require.True(t, ok)
	assert.Equal(t, "v2", def.Number)
}

func TestVersionTable_Default_lastFlaggedWins(t *testing.T) {
	// Application Version Manager lets several versions carry the flag; the
	// last one in document order is the effective default.
	doc := `<Root><Application Name="App">
		<Version VersionNumber="V1" IsDefault="true"/>
		<Version VersionNumber="V2" IsDefault="true"/>
		<Version VersionNumber="V3" IsDefault="false"/>
	</Application></Root>`

	reg, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	table, _ := reg.App("app")
	def, ok := table.Default()
	require.True(t, ok)
	assert.Equal(t, "v2", def.Number)
}

func TestVersionTable_Default_noneFlagged(t *testing.T) {
	doc := `<Root><Application Name="App"><Version VersionNumber="V1"/></Application></Root>`

	reg, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	table, _ := reg.App("app")
	_, ok := table.Default()
	assert.False(t, ok)
}

func TestRegistry_duplicateEntriesReplaced(t *testing.T) {
	doc := `<Root>
		<Application Name="App"><Version VersionNumber="V1" Platform="old"/></Application>
		<Application Name="APP"><Version VersionNumber="V1" Platform="new"/></Application>
	</Root>`

	reg, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Len())
	table, _ := reg.App("app")
	v, _ := table.Version("v1")
	assert.Equal(t, "new", v.Platform)
}

func TestRegistry_accessorsCopy(t *testing.T) {
	reg, err := Parse(strings.NewReader(sampleXML))
	require.NoError(t, err)

	names := reg.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"simo", "wadam"}, reg.Names())
}
