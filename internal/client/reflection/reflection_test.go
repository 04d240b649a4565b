package reflection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/client/config"
	"github.com/dmitrijs2005/wellkeeper/internal/client/models"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	reply    string
	err      error
	block    bool
	messages []llms.MessageContent
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func journal(date, content string) models.LogEntry {
	raw, _ := json.Marshal(models.JournalPayload{Content: content})
	return models.LogEntry{Date: date, Category: models.CategoryJournal, InputData: raw}
}

func humanText(t *testing.T, msgs []llms.MessageContent) string {
	t.Helper()
	require.Len(t, msgs, 2)
	require.Equal(t, llms.ChatMessageTypeSystem, msgs[0].Role)
	require.Equal(t, llms.ChatMessageTypeHuman, msgs[1].Role)
	part, ok := msgs[1].Parts[0].(llms.TextContent)
	require.True(t, ok)
	return part.Text
}

func TestReflect_ReturnsTrimmedText(t *testing.T) {
	m := &fakeModel{reply: "  Breathe in the quiet.  \n"}
	r := New(m, time.Second, logging.Discard())

	got := r.Reflect(context.Background(), []models.LogEntry{journal("2024-05-01", "calm day")})
	require.Equal(t, "Breathe in the quiet.", got)

	text := humanText(t, m.messages)
	require.Contains(t, text, `"date":"2024-05-01"`)
	require.Contains(t, text, `"category":"Journal"`)
}

func TestReflect_Fallbacks(t *testing.T) {
	ctx := context.Background()

	require.Equal(t, FallbackOnError, New(nil, 0, logging.Discard()).Reflect(ctx, nil))
	require.Equal(t, FallbackOnError, New(&fakeModel{err: errors.New("quota")}, 0, logging.Discard()).Reflect(ctx, nil))
	require.Equal(t, FallbackOnEmpty, New(&fakeModel{reply: "   "}, 0, logging.Discard()).Reflect(ctx, nil))
}

func TestReflect_TimeoutFallsBack(t *testing.T) {
	r := New(&fakeModel{block: true}, 10*time.Millisecond, logging.Discard())
	require.Equal(t, FallbackOnError, r.Reflect(context.Background(), nil))
}

func TestSummarize_LastFifteenNotesFirst(t *testing.T) {
	var logs []models.LogEntry
	for i := 1; i <= 20; i++ {
		logs = append(logs, journal(fmt.Sprintf("2024-05-%02d", i), "x"))
	}
	logs[19].Notes = "Meditation Session"

	s := summarize(logs)
	require.Len(t, s, RecentLimit)
	require.Equal(t, "2024-05-06", s[0].Date)
	require.Equal(t, "Meditation Session", s[14].Content)
	require.True(t, strings.HasPrefix(s[0].Content, `{"content":"x"`))
}

func TestNewOpenAIModel(t *testing.T) {
	m, err := NewOpenAIModel(&config.Config{
		ReflectionEndpoint: "http://127.0.0.1:1/v1",
		ReflectionModel:    "deepseek-chat",
		ReflectionAPIKey:   "test-key",
	})
	require.NoError(t, err)
	require.NotNil(t, m)
}
