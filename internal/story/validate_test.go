package story

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestValidateOK(t *testing.T) {
	doc := decode(t, `{
		"startSceneId": "scene-1",
		"scenes": {
			"scene-1": {"id": "scene-1", "text": "You wake.", "choices": [{"text": "Stand", "nextSceneId": "scene-2"}]},
			"scene-2": {"id": "scene-2", "text": "You stand.", "choices": []}
		}
	}`)
	res := Validate(doc)
	assert.True(t, res.OK)
	assert.Empty(t, res.Errors)
	assert.NotNil(t, res.Errors)
}

func TestValidateNotObject(t *testing.T) {
	for _, s := range []string{`"text"`, `null`, `3`, `true`} {
		res := Validate(decode(t, s))
		assert.False(t, res.OK)
		assert.Equal(t, []string{"File is not a JSON object."}, res.Errors)
	}
}

func TestValidateMissingTopLevel(t *testing.T) {
	res := Validate(decode(t, `{"startSceneId": 7}`))
	assert.False(t, res.OK)
	assert.Equal(t, []string{
		"Missing or invalid startSceneId (must be a string).",
		"Missing or invalid scenes object.",
	}, res.Errors)
}

func TestValidateSceneProblemsSorted(t *testing.T) {
	doc := decode(t, `{
		"startSceneId": "a",
		"scenes": {
			"b": {"id": "x", "text": 1, "choices": {}},
			"a": "nope"
		}
	}`)
	res := Validate(doc)
	assert.False(t, res.OK)
	assert.Equal(t, []string{
		`Scene "a" is not an object.`,
		`Scene "b" must have matching id property.`,
		`Scene "b" text must be a string.`,
		`Scene "b" choices must be an array.`,
	}, res.Errors)
}

func TestValidateArrayRoot(t *testing.T) {
	res := Validate(decode(t, `[]`))
	assert.False(t, res.OK)
	assert.Equal(t, []string{
		"Missing or invalid startSceneId (must be a string).",
		"Missing or invalid scenes object.",
	}, res.Errors)
}

func TestValidateScenesArray(t *testing.T) {
	doc := decode(t, `{
		"startSceneId": "0",
		"scenes": [
			{"id": "0", "text": "You wake.", "choices": []},
			{"id": "one", "text": "You stand.", "choices": []},
			null,
			[]
		]
	}`)
	res := Validate(doc)
	assert.False(t, res.OK)
	assert.Equal(t, []string{
		`Scene "1" must have matching id property.`,
		`Scene "2" is not an object.`,
		`Scene "3" must have matching id property.`,
		`Scene "3" text must be a string.`,
		`Scene "3" choices must be an array.`,
	}, res.Errors)
}

func TestValidateScenesArrayOK(t *testing.T) {
	res := Validate(decode(t, `{"startSceneId": "0", "scenes": [{"id": "0", "text": "t", "choices": []}]}`))
	assert.True(t, res.OK)
	assert.Empty(t, res.Errors)
}
