// Package oracle talks to a chat-completion API (DeepSeek-compatible)
// and turns its free-text answers into the structured verdicts, letters
// and notification emails the pipeline needs. Every call is single-shot:
// no retries, no streaming.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

const scoringSystemPrompt = "Eres un asistente experto en Recursos Humanos y en la gestión de ofertas de empleo. " +
	"Devuelve solo un JSON bien estructurado con las claves, nada mas: " +
	"'score' (float, 0-1), 'apto' (1/0) y 'justificacion' (string breve en español). " +
	"Dentro de los criterios ten en cuenta también la distancia del puesto de trabajo, " +
	"no quiero puestos que esten a mas de 1h lejos de Barcelona. " +
	"No incluyas texto fuera del JSON."

const notifierSystemPrompt = "Eres un asistente amigable y entusiasta. Tu objetivo es notificar a una usuaria " +
	"sobre una oferta de trabajo que mi sistema ha determinado que encaja perfectamente con su perfil; " +
	"la redaccion del texto debe ser en catalan. Tu tono debe ser cercano pero profesional, como un " +
	"'headhunter' personal. Devuelve SÓLO un JSON con dos claves: 'asunto' (string) y 'cuerpo' (string, " +
	"formato de texto plano, usa saltos de línea \\n). En el cuerpo, saluda por su nombre, menciona la " +
	"oferta, explica brevemente por qué es apta, resume las condiciones clave y proporciona el enlace " +
	"directo. Firma como 'Tu Asistente de Empleo' (en catalan)."

type Config struct {
	BaseURL   string
	APIKey    string
	Model     string
	Timeout   time.Duration
	MaxTokens int
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		logger:     logger.With("component", "oracle"),
	}
}

// NotificationFacts is the offer summary handed to the notification
// composer. Description is truncated before prompting.
type NotificationFacts struct {
	Title        string
	Role         string
	Location     string
	Compensation string
	Link         string
	Rationale    string
	Description  string
}

// Evaluate scores a CV against an offer. One call, one verdict.
func (c *Client) Evaluate(ctx context.Context, cvText, offerText string) (*domain.Verdict, error) {
	user := fmt.Sprintf("CV:\n\"\"\"\n%s\n\"\"\"\nOFERTA:\n\"\"\"\n%s\n\"\"\"", cvText, offerText)

	raw, err := c.chat(ctx, scoringSystemPrompt, user, 0.0, 256)
	if err != nil {
		return nil, err
	}

	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var verdict domain.Verdict
	if err := json.Unmarshal(payload, &verdict); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &verdict, nil
}

// ComposeLetter drafts a cover letter plus the email envelope for it.
func (c *Client) ComposeLetter(ctx context.Context, cvText, offerText, userName string) (*domain.LetterDraft, error) {
	prompt := fmt.Sprintf(`Eres un asistente que genera cartas de presentación.
Tienes el siguiente CV:

%s

Y la siguiente oferta de trabajo:

%s
Recuerda que la carta debe ser personalizada para la oferta y debe estar escrita en el idioma de la oferta (catalán, español o inglés).
Devuelve un JSON con esta estructura:

{
  "carta_texto": "...",
  "permite_envio_email": 1 o 0,
  "destinatario": "... o null",
  "asunto_email": "... o null",
  "cuerpo_email": "... o null"
}
En permite_envio_email pon 1 si la oferta especifica que se puede enviar un email, 0 en caso contrario.
No incluyas nada fuera del JSON.
Despidete siempre con "Cordialment, \n%s"
"Atenciosament" no existe en catalan, no lo incluyas NUNCA`, cvText, offerText, userName)

	raw, err := c.chat(ctx, "", prompt, 0.6, c.maxTokens)
	if err != nil {
		return nil, err
	}

	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var draft domain.LetterDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if draft.LetterText == "" {
		return nil, fmt.Errorf("%w: missing carta_texto", ErrMalformedResponse)
	}
	return &draft, nil
}

// ComposeNotification drafts the friendly heads-up email sent to other
// users about an offer that fits them.
func (c *Client) ComposeNotification(ctx context.Context, userName string, facts NotificationFacts) (*domain.EmailDraft, error) {
	description := facts.Description
	if len(description) > 1500 {
		description = description[:1500]
	}

	user := fmt.Sprintf(`Destinataria: %s

Información de la Oferta:
- Título: %s
- Puesto: %s
- Ubicación: %s
- Remuneración: %s
- Link: %s
- Justificación de Aptitud: %s
- Descripción Completa:
"""
%s
"""`, userName, facts.Title, facts.Role, facts.Location, facts.Compensation,
		facts.Link, facts.Rationale, description)

	raw, err := c.chat(ctx, notifierSystemPrompt, user, 0.5, c.maxTokens)
	if err != nil {
		return nil, err
	}

	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var draft domain.EmailDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if draft.Subject == "" || draft.Body == "" {
		return nil, fmt.Errorf("%w: missing asunto or cuerpo", ErrMalformedResponse)
	}
	return &draft, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) chat(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	var messages []chatMessage
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: user})

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("chat completion: unexpected status %d: %s", resp.StatusCode, snippet)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrMalformedResponse)
	}

	return parsed.Choices[0].Message.Content, nil
}
