package outreach

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/estate-cli/internal/model"
	"github.com/sells-group/estate-cli/internal/registry"
	"github.com/sells-group/estate-cli/internal/store"
)

type fakeTransport struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to, subject, body string
}

func (f *fakeTransport) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, body})
	return nil
}

func TestGenerateDemoMode(t *testing.T) {
	st := store.NewMemory()
	svc := NewService(registry.MustNew(), st, nil)

	res := svc.Generate(context.Background(), fabricatedRequest("Facebook"))

	assert.Equal(t, model.StatusDemo, res.Status)
	assert.NotEmpty(t, res.CaseID)
	assert.NotEmpty(t, res.Body)
	assert.Equal(t, "support@fb.com", res.SupportEmail)
	assert.NotEmpty(t, res.DemoNote)
	require.NotEmpty(t, res.NextSteps)
	assert.Contains(t, res.NextSteps[0], "support@fb.com")

	// The case is recorded even though nothing was sent.
	got, ok, err := st.Get(res.CaseID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.CaseStatusSubmitted, got.Status)
	assert.Equal(t, "email", got.ActionType)
}

func TestGenerateSent(t *testing.T) {
	st := store.NewMemory()
	tr := &fakeTransport{}
	svc := NewService(registry.MustNew(), st, tr)

	res := svc.Generate(context.Background(), fabricatedRequest("Google"))

	assert.Equal(t, model.StatusSent, res.Status)
	require.Len(t, tr.sent, 1)
	assert.Equal(t, "accounts-support@google.com", tr.sent[0].to)
	assert.Equal(t, res.Subject, tr.sent[0].subject)
	assert.Contains(t, tr.sent[0].body, "Jane Q. Doe")
}

func TestGenerateTransportFailureKeepsArtifact(t *testing.T) {
	st := store.NewMemory()
	svc := NewService(registry.MustNew(), st, &fakeTransport{err: assert.AnError})

	res := svc.Generate(context.Background(), fabricatedRequest("Google"))

	assert.Equal(t, model.StatusError, res.Status)
	assert.NotEmpty(t, res.Body, "transport failure must not lose the generated content")
	assert.NotEmpty(t, res.EmailPreview.BodyPreview)
	assert.NotEmpty(t, res.CaseID)

	// Case tracking survives the failed send.
	_, ok, err := st.Get(res.CaseID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPreviewTruncatesLongBodies(t *testing.T) {
	svc := NewService(registry.MustNew(), store.NewMemory(), nil)
	res := svc.Generate(context.Background(), fabricatedRequest("Google"))

	assert.LessOrEqual(t, len(res.EmailPreview.BodyPreview), previewLen+3)
	assert.Greater(t, len(res.Body), len(res.EmailPreview.BodyPreview))
}
