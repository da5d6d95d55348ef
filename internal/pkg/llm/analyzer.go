// Package llm wraps the OpenAI Responses API for the two calls the intake
// pipeline makes: verifying a declared document type and pulling the bare
// identity number out of a verified document.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

const (
	defaultModel     = shared.ResponsesModel("gpt-4.1")
	previewByteLimit = 128 * 1024 // cap what we send to the model
)

// trueToken is the only completion accepted as a pass. "False", an empty
// answer, or any other wording is a rejection. Intentionally asymmetric:
// ambiguous model output must never count as verified.
const trueToken = "True"

// Payload is the verifiable content of one upload: extracted text for PDFs,
// a retrievable image reference for raster formats.
type Payload struct {
	Text     string
	ImageURL string
}

func (p Payload) isImage() bool { return p.ImageURL != "" }

type Analyzer struct {
	client *openai.Client
	model  shared.ResponsesModel
}

func NewAnalyzer(apiKey string) *Analyzer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Analyzer{client: &client, model: defaultModel}
}

// VerifyDocument asks the model whether the uploaded content really is a
// document of declaredType. Transport or SDK failures are returned as
// errors; a readable answer that is not the true token is simply false.
func (a *Analyzer) VerifyDocument(ctx context.Context, declaredType string, payload Payload) (bool, error) {
	prompt := buildVerificationPrompt(declaredType)

	var output string
	var err error
	if payload.isImage() {
		output, err = a.completeWithImage(ctx, verificationSystem, prompt, payload.ImageURL)
	} else {
		output, err = a.complete(ctx, verificationSystem, prompt+"\n\nDocument content:\n"+truncate(payload.Text))
	}
	if err != nil {
		return false, err
	}

	return ParseVerdict(output), nil
}

// ParseVerdict accepts only the exact (trimmed) true token.
func ParseVerdict(output string) bool {
	return strings.TrimSpace(output) == trueToken
}

// ExtractNumber returns the bare license/SSN number. The prompt forbids
// spaces, dashes, and commas; the model's output is used verbatim apart from
// surrounding whitespace.
func (a *Analyzer) ExtractNumber(ctx context.Context, payload Payload) (string, error) {
	var output string
	var err error
	if payload.isImage() {
		output, err = a.completeWithImage(ctx, "", extractionImagePrompt, payload.ImageURL)
	} else {
		output, err = a.complete(ctx, "", extractionTextPrompt+truncate(payload.Text))
	}
	if err != nil {
		return "", err
	}

	output = strings.TrimSpace(output)
	if output == "" {
		return "", errors.New("model returned an empty response")
	}
	return output, nil
}

func (a *Analyzer) complete(ctx context.Context, system string, user string) (string, error) {
	input := responses.ResponseInputParam{}
	if system != "" {
		input = append(input, responses.ResponseInputItemParamOfMessage(system, responses.EasyInputMessageRoleSystem))
	}
	input = append(input, responses.ResponseInputItemParamOfMessage(user, responses.EasyInputMessageRoleUser))

	resp, err := a.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: a.model,
		Input: responses.ResponseNewParamsInputUnion{OfInputItemList: input},
	})
	if err != nil {
		return "", fmt.Errorf("call OpenAI: %w", err)
	}

	return resp.OutputText(), nil
}

func (a *Analyzer) completeWithImage(ctx context.Context, system string, user string, imageURL string) (string, error) {
	input := responses.ResponseInputParam{}
	if system != "" {
		input = append(input, responses.ResponseInputItemParamOfMessage(system, responses.EasyInputMessageRoleSystem))
	}

	input = append(input, responses.ResponseInputItemUnionParam{
		OfMessage: &responses.EasyInputMessageParam{
			Role: responses.EasyInputMessageRoleUser,
			Content: responses.EasyInputMessageContentUnionParam{
				OfInputItemContentList: responses.ResponseInputMessageContentListParam{
					responses.ResponseInputContentUnionParam{
						OfInputText: &responses.ResponseInputTextParam{Text: user},
					},
					responses.ResponseInputContentUnionParam{
						OfInputImage: &responses.ResponseInputImageParam{
							ImageURL: openai.String(imageURL),
							Detail:   responses.ResponseInputImageDetailAuto,
						},
					},
				},
			},
		},
	})

	resp, err := a.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: a.model,
		Input: responses.ResponseNewParamsInputUnion{OfInputItemList: input},
	})
	if err != nil {
		return "", fmt.Errorf("call OpenAI: %w", err)
	}

	return resp.OutputText(), nil
}

func truncate(contents string) string {
	if len(contents) > previewByteLimit {
		return contents[:previewByteLimit] + "\n\n[...truncated for brevity...]"
	}
	return contents
}
