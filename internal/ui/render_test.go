package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/chime"
	"github.com/aws/aws-sdk-go-v2/service/chime/types"

	"github.com/vietdv277/chimectl/internal/invoke"
	"github.com/vietdv277/chimectl/internal/operation"
)

func sampleOutput() *chime.ListUsersOutput {
	return &chime.ListUsersOutput{
		Users: []types.User{
			{UserId: aws.String("u-1"), PrimaryEmail: aws.String("ana@example.com"), UserType: types.UserTypePrivateUser},
			{UserId: aws.String("u-2"), PrimaryEmail: aws.String("bo@example.com"), UserType: types.UserTypeSharedDevice},
		},
	}
}

func TestRenderJSONDropsMetadata(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatJSON, sampleOutput()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if _, ok := doc["ResultMetadata"]; ok {
		t.Error("ResultMetadata leaked into output")
	}
	users, _ := doc["Users"].([]any)
	if len(users) != 2 {
		t.Fatalf("Users = %v", doc["Users"])
	}
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatYAML, sampleOutput().Users[0]); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"UserId: u-1", "PrimaryEmail: ana@example.com", "UserType: PrivateUser"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTableList(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatTable, sampleOutput().Users); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"UserId", "PrimaryEmail", "u-1", "bo@example.com", "2 items"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "UserId") > strings.Index(out, "PrimaryEmail") {
		t.Errorf("ID column should come first:\n%s", out)
	}
}

func TestRenderTableScalarAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatTable, aws.String("acme")); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "acme" {
		t.Errorf("scalar output = %q", got)
	}

	buf.Reset()
	if err := Render(&buf, FormatTable, &chime.DeleteAccountOutput{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty response rendered %q", buf.String())
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, "xml", struct{}{}); err == nil {
		t.Fatal("Render(xml) succeeded")
	}
	if err := CheckFormat("yaml"); err != nil {
		t.Errorf("CheckFormat(yaml) = %v", err)
	}
}

func TestRenderError(t *testing.T) {
	ie := invoke.Classify("GetAccount", "us-east-1", errors.New("connection reset"))

	var buf bytes.Buffer
	if err := RenderError(&buf, FormatJSON, ie); err != nil {
		t.Fatalf("RenderError() error = %v", err)
	}
	var doc struct {
		Error struct {
			Operation string `json:"operation"`
			Kind      string `json:"kind"`
			Message   string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("error output is not JSON: %v", err)
	}
	if doc.Error.Operation != "GetAccount" || doc.Error.Kind != "transport" || doc.Error.Message != "connection reset" {
		t.Errorf("error record = %+v", doc.Error)
	}

	buf.Reset()
	if err := RenderError(&buf, FormatYAML, ie); err != nil {
		t.Fatalf("RenderError() error = %v", err)
	}
	if !strings.Contains(buf.String(), "kind: transport") {
		t.Errorf("YAML error record = %q", buf.String())
	}
}

func TestUsage(t *testing.T) {
	d := &operation.Descriptor{
		Name:    "GetUser",
		Service: "chime",
		Params: []operation.Param{
			operation.Str("AccountId", operation.Required, operation.At(1)),
			operation.Str("UserId", operation.At(2)),
			operation.Str("Email", operation.Required),
		},
	}
	got := Usage("chimectl", d)
	want := "chimectl chime get-user <account-id> [<user-id>] --email <string> [flags]"
	if got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}
}

type sizedOutput struct {
	Name  string
	Bytes int64
	Ratio float64
}

func TestRenderKeepsLargeIntegers(t *testing.T) {
	v := sizedOutput{Name: "archive", Bytes: 1<<53 + 1, Ratio: 0.5}

	for _, format := range []string{FormatJSON, FormatYAML, FormatTable} {
		var buf bytes.Buffer
		if err := Render(&buf, format, v); err != nil {
			t.Fatalf("Render(%s) error = %v", format, err)
		}
		if !strings.Contains(buf.String(), "9007199254740993") {
			t.Errorf("%s output lost precision:\n%s", format, buf.String())
		}
		if !strings.Contains(buf.String(), "0.5") {
			t.Errorf("%s output missing float:\n%s", format, buf.String())
		}
	}

	var buf bytes.Buffer
	_ = Render(&buf, FormatYAML, v)
	if strings.Contains(buf.String(), `"9007199254740993"`) {
		t.Errorf("YAML rendered the integer as a string:\n%s", buf.String())
	}
}
