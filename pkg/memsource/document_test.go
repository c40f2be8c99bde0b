package memsource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

const projectJSON = `{
  "id": "12345",
  "internalId": 9007199254740993,
  "name": "Test Project",
  "shared": true,
  "targetLangs": ["es", "de"],
  "owner": {"email": "jdoe@example.com", "userName": "jdoe"},
  "client": null,
  "workflowSteps": [{"name": "Translation"}, "not-an-object", {"name": "Review"}]
}`

func TestParseDocument(t *testing.T) {
	t.Parallel()

	t.Run("object", func(t *testing.T) {
		t.Parallel()

		doc, err := memsource.ParseDocument([]byte(projectJSON))
		require.NoError(t, err)
		assert.Equal(t, "Test Project", doc.String("name"))
	})

	t.Run("not an object", func(t *testing.T) {
		t.Parallel()

		_, err := memsource.ParseDocument([]byte(`["a"]`))
		require.ErrorIs(t, err, memsource.ErrNotAnObject)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		_, err := memsource.ParseDocument([]byte(`{`))
		require.Error(t, err)
	})
}

func TestDocument_Accessors(t *testing.T) {
	t.Parallel()

	doc, err := memsource.ParseDocument([]byte(projectJSON))
	require.NoError(t, err)

	assert.Equal(t, "jdoe@example.com", doc.String("owner.email"))
	assert.Equal(t, "de", doc.String("targetLangs.1"))
	assert.Equal(t, "9007199254740993", doc.String("internalId"))
	assert.Equal(t, int64(9007199254740993), doc.Int("internalId"))
	assert.Equal(t, int64(12345), doc.Int("id"))
	assert.True(t, doc.Bool("shared"))
	assert.Equal(t, "true", doc.String("shared"))

	assert.True(t, doc.Has("owner"))
	assert.False(t, doc.Has("client"))
	assert.False(t, doc.Has("owner.missing.deeper"))
	assert.Empty(t, doc.String("targetLangs.7"))
	assert.Empty(t, doc.String("targetLangs.x"))
	assert.Zero(t, doc.Int("name"))

	owner := doc.Doc("owner")
	require.NotNil(t, owner)
	assert.Equal(t, "jdoe", owner.String("userName"))
	assert.Nil(t, doc.Doc("name"))

	assert.Len(t, doc.Slice("targetLangs"), 2)
	assert.Nil(t, doc.Slice("owner"))

	steps := doc.Docs("workflowSteps")
	require.Len(t, steps, 2)
	assert.Equal(t, "Review", steps[1].String("name"))
}

func TestDocument_Decode(t *testing.T) {
	t.Parallel()

	doc, err := memsource.ParseDocument([]byte(projectJSON))
	require.NoError(t, err)

	var project memsource.Project

	require.NoError(t, doc.Decode(&project))
	assert.Equal(t, "12345", project.ID)
	assert.Equal(t, int64(9007199254740993), project.InternalID)
	assert.Equal(t, []string{"es", "de"}, project.TargetLangs)
	assert.Equal(t, "jdoe@example.com", project.Owner.Email)
	assert.Nil(t, project.Client)
}
