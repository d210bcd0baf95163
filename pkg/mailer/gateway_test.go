package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailforge/pkg/logger"
)

// MockTransport is a mock implementation of the Transport interface.
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Send(ctx context.Context, env Envelope, doc Document) (string, error) {
	args := m.Called(ctx, env, doc)
	return args.String(0), args.Error(1)
}

func validEnvelope() Envelope {
	return Envelope{
		To:      []string{"recipient@example.com"},
		From:    "onboarding@resend.dev",
		Subject: "New Token Launch: Meteora (MET)",
		Tags:    []Tag{{Name: "category", Value: "token_launch"}},
	}
}

func testDocument() Document {
	return NewDocument("test", "Preview", Heading(1, "Hello"), Text("World"))
}

func TestGateway_Send_Success(t *testing.T) {
	t.Parallel()

	transport := &MockTransport{}
	transport.On("Send", mock.Anything, validEnvelope(), testDocument()).Return("msg_123", nil)

	gw := NewGateway(transport, "re_test")
	result, err := gw.Send(context.Background(), validEnvelope(), testDocument())

	require.NoError(t, err)
	require.Equal(t, "msg_123", result.ID)
	transport.AssertNumberOfCalls(t, "Send", 1)
}

func TestGateway_Send_NoRecipient(t *testing.T) {
	t.Parallel()

	transport := &MockTransport{}
	gw := NewGateway(transport, "re_test")

	env := validEnvelope()
	env.To = nil

	_, err := gw.Send(context.Background(), env, testDocument())

	require.ErrorIs(t, err, ErrInvalidEnvelope)
	require.ErrorIs(t, err, ErrNoRecipient)
	transport.AssertNotCalled(t, "Send")
}

func TestGateway_Send_MissingCredential(t *testing.T) {
	t.Parallel()

	for _, credential := range []string{"", "   "} {
		transport := &MockTransport{}
		gw := NewGateway(transport, credential)

		_, err := gw.Send(context.Background(), validEnvelope(), testDocument())

		require.ErrorIs(t, err, ErrMissingCredential)
		transport.AssertNotCalled(t, "Send")
	}
}

func TestGateway_Send_CredentialCheckedBeforeEnvelope(t *testing.T) {
	t.Parallel()

	transport := &MockTransport{}
	gw := NewGateway(transport, "")

	_, err := gw.Send(context.Background(), Envelope{}, Document{})

	require.ErrorIs(t, err, ErrMissingCredential)
	require.NotErrorIs(t, err, ErrInvalidEnvelope)
}

func TestGateway_Send_ValidationFailuresNeverReachProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Envelope)
		want   error
	}{
		{"blank recipient", func(e *Envelope) { e.To = []string{"a@example.com", " "} }, ErrNoRecipient},
		{"no sender", func(e *Envelope) { e.From = "" }, ErrNoSender},
		{"no subject", func(e *Envelope) { e.Subject = "  " }, ErrNoSubject},
		{"tag without name", func(e *Envelope) { e.Tags = []Tag{{Value: "x"}} }, ErrInvalidTag},
		{"duplicate tags", func(e *Envelope) {
			e.Tags = []Tag{{Name: "category", Value: "a"}, {Name: "category", Value: "b"}}
		}, ErrDuplicateTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			transport := &MockTransport{}
			gw := NewGateway(transport, "re_test")

			env := validEnvelope()
			tt.mutate(&env)

			_, err := gw.Send(context.Background(), env, testDocument())

			require.ErrorIs(t, err, ErrInvalidEnvelope)
			require.ErrorIs(t, err, tt.want)
			transport.AssertNotCalled(t, "Send")
		})
	}
}

// rateLimitError mimics a structured provider error.
type rateLimitError struct {
	RetryAfter string
}

func (e *rateLimitError) Error() string {
	return "Too many requests. You can only make 2 requests per second."
}

func TestGateway_Send_ProviderErrorPropagatesUnchanged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logger.Config{}, logger.DispatchIDExtractor)

	providerErr := &rateLimitError{RetryAfter: "1"}
	transport := &MockTransport{}
	transport.On("Send", mock.Anything, mock.Anything, mock.Anything).Return("", providerErr)

	gw := NewGateway(transport, "re_test", WithLogger(log))
	result, err := gw.Send(context.Background(), validEnvelope(), testDocument())

	require.Same(t, providerErr, err)
	require.Equal(t, providerErr.Error(), err.Error())
	require.Empty(t, result.ID)
	transport.AssertNumberOfCalls(t, "Send", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "ERROR", rec["level"])
	require.Equal(t, providerErr.Error(), rec["error"])
	require.NotEmpty(t, rec["dispatch_id"])
}

func TestGateway_Send_NoLogOnSuccess(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logger.Config{Level: "debug"})

	transport := &MockTransport{}
	transport.On("Send", mock.Anything, mock.Anything, mock.Anything).Return("msg_1", nil)

	gw := NewGateway(transport, "re_test", WithLogger(log))
	_, err := gw.Send(context.Background(), validEnvelope(), testDocument())

	require.NoError(t, err)
	require.Empty(t, buf.String())
}

func TestGateway_Send_TagsDoNotAlterDocument(t *testing.T) {
	t.Parallel()

	transport := &MockTransport{}
	transport.On("Send", mock.Anything, mock.Anything, testDocument()).Return("msg_1", nil)

	gw := NewGateway(transport, "re_test")

	env := validEnvelope()
	env.Tags = append(env.Tags, Tag{Name: "campaign", Value: "launch"})

	_, err := gw.Send(context.Background(), env, testDocument())
	require.NoError(t, err)
	transport.AssertExpectations(t)
}

func TestGateway_Send_Concurrent(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	seen := make(map[string]int)
	transport := TransportFunc(func(ctx context.Context, env Envelope, _ Document) (string, error) {
		id, ok := logger.DispatchID(ctx)
		if !ok {
			return "", errors.New("missing dispatch id")
		}
		mu.Lock()
		seen[id]++
		mu.Unlock()
		return env.To[0], nil
	})

	gw := NewGateway(transport, "re_test")

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			env := validEnvelope()
			env.To = []string{strings.Repeat("a", i+1) + "@example.com"}
			result, err := gw.Send(context.Background(), env, testDocument())
			if err != nil || result.ID != env.To[0] {
				t.Errorf("unexpected result %q: %v", result.ID, err)
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, 50)
}
