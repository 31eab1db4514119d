package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiliankoe/storybranch/internal/ai"
	"github.com/kiliankoe/storybranch/internal/game"
	"github.com/kiliankoe/storybranch/internal/story"
	"github.com/rs/zerolog"
)

// Narrator is the narrative backend the handlers drive.
type Narrator interface {
	Intro(ctx context.Context, p game.GameParameters) (string, error)
	Outcomes(ctx context.Context, scene string, choices []string) ([]string, error)
	Next(ctx context.Context, in game.NextSceneInput) (string, error)
}

type Handler struct {
	narrator Narrator
	log      zerolog.Logger
}

func NewHandler(n Narrator, log zerolog.Logger) *Handler {
	return &Handler{narrator: n, log: log}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
}

func (h *Handler) GenerateGame(c *gin.Context) {
	body := readObject(c)
	params := game.GameParameters{
		Title:         stringField(body, "gameTitle", game.DefaultTitle),
		Genre:         stringField(body, "genre", ""),
		Setting:       stringField(body, "setting", ""),
		Tone:          stringField(body, "tone", ""),
		MainCharacter: stringField(body, "mainCharacter", ""),
		Goal:          stringField(body, "goal", ""),
	}

	intro, err := h.narrator.Intro(c.Request.Context(), params)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"intro": intro, "gameData": body})
}

func (h *Handler) GenerateOutcomes(c *gin.Context) {
	body := readObject(c)
	choices, ok := stringSlice(body, "choices")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_choices", "message": "choices must be an array of strings"})
		return
	}

	outcomes, err := h.narrator.Outcomes(c.Request.Context(), stringField(body, "scene", ""), choices)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"outcomes": outcomes})
}

func (h *Handler) GenerateNarrative(c *gin.Context) {
	body := readObject(c)
	in := game.NextSceneInput{
		ParentText:  stringField(body, "parentText", ""),
		ChoiceText:  stringField(body, "choiceText", ""),
		OutcomeText: stringField(body, "outcomeText", ""),
	}

	narrative, err := h.narrator.Next(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"narrative": narrative})
}

func (h *Handler) ValidateStory(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable_body"})
		return
	}
	var doc any
	if err := decodeJSON(raw, &doc); err != nil {
		c.JSON(http.StatusOK, story.Result{OK: false, Errors: []string{"File is not valid JSON."}})
		return
	}
	c.JSON(http.StatusOK, story.Validate(doc))
}

func (h *Handler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	status := http.StatusBadGateway
	if errors.Is(err, ai.ErrInvalidMessages) {
		status = http.StatusInternalServerError
	}
	h.log.Error().Err(err).Str("path", c.FullPath()).Msg("generation failed")
	c.JSON(status, gin.H{"error": "generation_failed", "message": game.ErrGenerationFailed.Error()})
}

// readObject decodes the body as a JSON object. Anything else, including an
// empty or malformed body, yields an empty object.
func readObject(c *gin.Context) map[string]any {
	raw, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}
	}
	var obj map[string]any
	if err := decodeJSON(raw, &obj); err != nil || obj == nil {
		return map[string]any{}
	}
	return obj
}

var errTrailingData = errors.New("unexpected data after JSON value")

// decodeJSON requires raw to hold exactly one JSON value.
func decodeJSON(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errTrailingData
	}
	return nil
}

// stringField falls back to def when the key is missing or not a string.
func stringField(body map[string]any, key, def string) string {
	if s, ok := body[key].(string); ok {
		return s
	}
	return def
}

// stringSlice reports false only when the key is present with a non-list
// value or a list holding non-strings. Missing or null means empty.
func stringSlice(body map[string]any, key string) ([]string, bool) {
	v, present := body[key]
	if !present || v == nil {
		return []string{}, true
	}
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
