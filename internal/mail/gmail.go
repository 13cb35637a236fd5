// Package mail sends and drafts messages through the Gmail API. Token
// acquisition is not handled here: the token file must already exist,
// and a missing or stale one is a startup error.
package mail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

type Config struct {
	From            string
	CredentialsFile string
	TokenFile       string
}

type Gmail struct {
	service *gmail.Service
	from    string
	logger  *slog.Logger
}

func NewGmail(ctx context.Context, cfg Config, logger *slog.Logger) (*Gmail, error) {
	creds, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read gmail credentials: %w", err)
	}

	oauthCfg, err := google.ConfigFromJSON(creds,
		gmail.GmailComposeScope, gmail.GmailSendScope, gmail.GmailModifyScope)
	if err != nil {
		return nil, fmt.Errorf("parse gmail credentials: %w", err)
	}

	tokenData, err := os.ReadFile(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("read gmail token (authorize out of band first): %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("parse gmail token: %w", err)
	}

	client := oauthCfg.Client(ctx, &token)
	service, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}

	return &Gmail{
		service: service,
		from:    cfg.From,
		logger:  logger.With("component", "mail"),
	}, nil
}

// CreateDraft stores a draft with the given attachments and returns its id.
func (g *Gmail) CreateDraft(ctx context.Context, to, subject, body string, attachments []string) (string, error) {
	raw, err := buildMessage(g.from, to, subject, body, attachments)
	if err != nil {
		return "", err
	}

	draft, err := g.service.Users.Drafts.Create("me", &gmail.Draft{
		Message: &gmail.Message{Raw: raw},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create draft: %w", err)
	}

	g.logger.Info("draft created", "draft_id", draft.Id, "to", to)
	return draft.Id, nil
}

// Send delivers a plain-text message immediately and returns its id.
func (g *Gmail) Send(ctx context.Context, to, subject, body string) (string, error) {
	raw, err := buildMessage(g.from, to, subject, body, nil)
	if err != nil {
		return "", err
	}

	msg, err := g.service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}

	g.logger.Info("message sent", "message_id", msg.Id, "to", to)
	return msg.Id, nil
}

// buildMessage assembles an RFC 2822 multipart message and encodes it
// the way the Gmail API wants its Raw field.
func buildMessage(from, to, subject, body string, attachments []string) (string, error) {
	var buf strings.Builder
	writer := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", writer.Boundary())

	textPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/plain; charset="utf-8"`},
	})
	if err != nil {
		return "", fmt.Errorf("create text part: %w", err)
	}
	if _, err := io.WriteString(textPart, body); err != nil {
		return "", fmt.Errorf("write text part: %w", err)
	}

	for _, path := range attachments {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read attachment %s: %w", path, err)
		}

		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		part, err := writer.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {contentType},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", filepath.Base(path))},
		})
		if err != nil {
			return "", fmt.Errorf("create attachment part: %w", err)
		}
		if _, err := io.WriteString(part, base64.StdEncoding.EncodeToString(data)); err != nil {
			return "", fmt.Errorf("write attachment part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	return base64.URLEncoding.EncodeToString([]byte(buf.String())), nil
}
