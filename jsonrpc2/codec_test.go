package jsonrpc2

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(t *testing.T, body string) string {
	t.Helper()
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
}

func TestCodec_EncodeExactLength(t *testing.T) {
	var buf bytes.Buffer
	codec := NewCodec(struct {
		io.Reader
		io.Writer
	}{Reader: &buf, Writer: &buf})

	req := &Request{JSONRPC: Version, ID: NewNumberId(1), Method: "initialize", Params: []byte(`{}`)}
	require.NoError(t, codec.WriteMessage(req))

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`
	want := fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
	assert.Equal(t, want, buf.String())
}

func TestCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  interface{}
	}{
		{"request", &Request{JSONRPC: Version, ID: NewNumberId(7), Method: "textDocument/hover", Params: []byte(`{"a":1}`)}},
		{"notification", &Notification{JSONRPC: Version, Method: "textDocument/didOpen", Params: []byte(`{}`)}},
		{"response result", &Response{JSONRPC: Version, ID: NewStringId("x"), Result: []byte(`42`)}},
		{"response error", &Response{JSONRPC: Version, ID: NewNumberId(3), Error: NewError(InvalidParams, "bad")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			codec := NewCodec(struct {
				io.Reader
				io.Writer
			}{Reader: &buf, Writer: &buf})

			require.NoError(t, codec.WriteMessage(tt.msg))
			got, err := codec.ReadMessage()
			require.NoError(t, err)
			assert.Equal(t, tt.msg, got)
		})
	}
}

// Garbage bytes followed by a valid frame must produce exactly one decode
// error, then the frame.
func TestCodec_Resynchronization(t *testing.T) {
	body := `{"method":"exit"}`
	input := "AAAA" + frame(t, body)
	c := NewCodec(readWriter{r: bytes.NewBufferString(input), w: &bytes.Buffer{}})

	_, err := c.ReadMessage()
	require.Error(t, err)

	msg, err := c.ReadMessage()
	require.NoError(t, err)
	notif, ok := msg.(*Notification)
	require.True(t, ok, "expected the valid frame after the garbage to decode cleanly")
	assert.Equal(t, "exit", notif.Method)
}

type readWriter struct {
	r io.Reader
	w io.Writer
}

func (rw readWriter) Read(p []byte) (int, error)  { return rw.r.Read(p) }
func (rw readWriter) Write(p []byte) (int, error) { return rw.w.Write(p) }

func TestCodec_MissingContentLength(t *testing.T) {
	input := "Content-Type: application/vscode-jsonrpc; charset=utf-8\r\n\r\n"
	c := NewCodec(readWriter{r: bytes.NewBufferString(input), w: &bytes.Buffer{}})
	_, err := c.ReadMessage()
	assert.Error(t, err)
}

func TestCodec_UnsupportedCharset(t *testing.T) {
	body := "{}"
	input := fmt.Sprintf("Content-Length: %d\r\nContent-Type: application/vscode-jsonrpc; charset=latin1\r\n\r\n%s", len(body), body)
	c := NewCodec(readWriter{r: bytes.NewBufferString(input), w: &bytes.Buffer{}})
	_, err := c.ReadMessage()
	assert.Error(t, err)
}

func TestCodec_InvalidJSONBody(t *testing.T) {
	body := "not json"
	input := fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
	c := NewCodec(readWriter{r: bytes.NewBufferString(input), w: &bytes.Buffer{}})
	_, err := c.ReadMessage()
	assert.Error(t, err)
}

func TestCodec_EOF(t *testing.T) {
	c := NewCodec(readWriter{r: bytes.NewBufferString(""), w: &bytes.Buffer{}})
	_, err := c.ReadMessage()
	assert.ErrorIs(t, err, io.EOF)
}
