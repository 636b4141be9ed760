package mendix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	docs := []Document{
		{ID: "1", Name: "Foo", ModuleName: "MyModule", Type: "Pages$Page"},
		{ID: "2", Name: "Foo", ModuleName: "Other", Type: "Pages$Page"},
		{ID: "3", Name: "Bar", ModuleName: "MyModule", Type: "Microflows$Microflow"},
	}

	t.Run("module context disambiguates", func(t *testing.T) {
		doc, ok := Match(docs, "MyModule/pages/Foo.page.xml")
		require.True(t, ok)
		assert.Equal(t, "1", doc.ID)
	})

	t.Run("export root prefix is ignored", func(t *testing.T) {
		doc, ok := Match(docs, "repo-main/Other/pages/Foo.page.xml")
		require.True(t, ok)
		assert.Equal(t, "2", doc.ID)
	})

	t.Run("unique name match without type segment falls back", func(t *testing.T) {
		doc, ok := Match(docs, "randomfolder/Bar.xml")
		require.True(t, ok)
		assert.Equal(t, "3", doc.ID)
	})

	t.Run("ambiguous name without context or type is no match", func(t *testing.T) {
		_, ok := Match(docs, "randomfolder/Foo.xml")
		assert.False(t, ok)
	})

	t.Run("type disambiguates multiple context matches", func(t *testing.T) {
		twoModules := []Document{
			{ID: "p", Name: "Home", ModuleName: "Shop", Type: "Pages$Page"},
			{ID: "m", Name: "Home", ModuleName: "Shop", Type: "Microflows$Microflow"},
		}
		doc, ok := Match(twoModules, "Shop/pages/Home.page.xml")
		require.True(t, ok)
		assert.Equal(t, "p", doc.ID)

		doc, ok = Match(twoModules, "Shop/microflows/Home.xml")
		require.True(t, ok)
		assert.Equal(t, "m", doc.ID)
	})

	t.Run("multiple context matches with no inferable type is no match", func(t *testing.T) {
		twoModules := []Document{
			{ID: "p", Name: "Home", ModuleName: "Shop", Type: "Pages$Page"},
			{ID: "m", Name: "Home", ModuleName: "Shop", Type: "Microflows$Microflow"},
		}
		_, ok := Match(twoModules, "Shop/stuff/Home.xml")
		assert.False(t, ok)
	})

	t.Run("type tie among context matches is no match", func(t *testing.T) {
		tied := []Document{
			{ID: "a", Name: "Home", ModuleName: "Shop", Type: "Pages$Page"},
			{ID: "b", Name: "Home", ModuleName: "Shop", Type: "Pages$Page"},
		}
		_, ok := Match(tied, "Shop/pages/Home.page.xml")
		assert.False(t, ok)
	})

	t.Run("compound extensions left in the stem still match", func(t *testing.T) {
		doc, ok := Match(docs, "MyModule/microflows/Bar.mx.json")
		require.True(t, ok)
		assert.Equal(t, "3", doc.ID)

		// A name that merely extends the stem the other way around must not.
		_, ok = Match(docs, "MyModule/pages/Fo.page.xml")
		assert.False(t, ok)
	})

	t.Run("name matching is case-insensitive", func(t *testing.T) {
		doc, ok := Match(docs, "mymodule/pages/foo.page.xml")
		require.True(t, ok)
		assert.Equal(t, "1", doc.ID)
	})

	t.Run("no name match", func(t *testing.T) {
		_, ok := Match(docs, "MyModule/pages/Missing.page.xml")
		assert.False(t, ok)
	})

	t.Run("empty path", func(t *testing.T) {
		_, ok := Match(docs, "")
		assert.False(t, ok)
	})
}

func TestActiveDocumentMatchesPath(t *testing.T) {
	active := ActiveDocument{DocumentName: "Home", ModuleName: "Shop"}

	assert.True(t, active.MatchesPath("Shop/pages/Home.page.xml"))
	assert.True(t, active.MatchesPath("anything/Home.page.xml"))
	assert.True(t, active.MatchesPath("anything/Home"))
	assert.True(t, active.MatchesPath("Shop/pages/CustomerHome.page.xml"))

	assert.False(t, active.MatchesPath("Elsewhere/pages/CustomerHome.page.xml"))
	assert.False(t, active.MatchesPath("Shop/pages/Checkout.page.xml"))
	assert.False(t, active.MatchesPath(""))
	assert.False(t, ActiveDocument{}.MatchesPath("Shop/pages/Home.page.xml"))
}
