package operation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type widgetOptions struct{}

type getWidgetInput struct {
	WidgetId  *string
	Limit     *int32
	Archived  *bool
	Tags      []string
	Color     widgetColor
	Since     *time.Time
	Spec      *widgetSpec
	unexposed string
}

type widgetColor string

type widgetSpec struct {
	Size int `json:"size"`
}

type getWidgetOutput struct {
	Name *string
}

type widgetAPI interface {
	GetWidget(ctx context.Context, in *getWidgetInput, optFns ...func(*widgetOptions)) (*getWidgetOutput, error)
}

type widgetClient struct{ calls int }

func (c *widgetClient) GetWidget(ctx context.Context, in *getWidgetInput, optFns ...func(*widgetOptions)) (*getWidgetOutput, error) {
	c.calls++
	name := "w-" + *in.WidgetId
	return &getWidgetOutput{Name: &name}, nil
}

func widgetDescriptor() *Descriptor {
	return New("widgets", "GetWidget", widgetAPI.GetWidget).
		Binding("GET", "/widgets/{widgetId}").
		With(
			Str("WidgetId", Required, At(1), Piped),
			Int("Limit"),
			Bool("Archived"),
			List("Tags"),
			Enum("Color", []string{"red", "blue"}),
			Time("Since"),
			JSON("Spec"),
		).
		Select("Name")
}

func TestRegister_ValidDescriptor(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(widgetDescriptor()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, err := r.Lookup("widgets", "get-widget")
	if err != nil {
		t.Fatalf("lookup by command name: %v", err)
	}
	if d.Name != "GetWidget" {
		t.Fatalf("got %q", d.Name)
	}
	if _, err := r.Lookup("widgets", "getwidget"); err != nil {
		t.Fatalf("lookup by operation name should be case-insensitive: %v", err)
	}
	if _, err := r.Find("get-widget"); err != nil {
		t.Fatalf("find: %v", err)
	}
	if _, err := r.Lookup("widgets", "nope"); !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got %v", err)
	}
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(widgetDescriptor()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(widgetDescriptor()); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestValidate_RejectsMalformed(t *testing.T) {
	cases := map[string]*Descriptor{
		"unknown field":      New("widgets", "GetWidget", widgetAPI.GetWidget).With(Str("Missing")),
		"unexported field":   New("widgets", "GetWidget", widgetAPI.GetWidget).With(Str("unexposed")),
		"kind mismatch":      New("widgets", "GetWidget", widgetAPI.GetWidget).With(Bool("WidgetId")),
		"enum without value": New("widgets", "GetWidget", widgetAPI.GetWidget).With(Enum("Color", nil)),
		"duplicate position": New("widgets", "GetWidget", widgetAPI.GetWidget).With(Str("WidgetId", At(1)), Int("Limit", At(1))),
		"gap in positions":   New("widgets", "GetWidget", widgetAPI.GetWidget).With(Str("WidgetId", At(2))),
		"two pipelines":      New("widgets", "GetWidget", widgetAPI.GetWidget).With(Str("WidgetId", Piped), List("Tags", Piped)),
		"bad target":         New("widgets", "GetWidget", widgetAPI.GetWidget).With(Str("WidgetId")).Confirm(ImpactHigh, "Limit"),
		"bad select":         New("widgets", "GetWidget", widgetAPI.GetWidget).Select("Name..First"),
		"bad echo select":    New("widgets", "GetWidget", widgetAPI.GetWidget).Select("^Nope"),
		"duplicate param":    New("widgets", "GetWidget", widgetAPI.GetWidget).With(Str("WidgetId"), Str("WidgetId")),
	}

	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			err := Validate(d)
			if !errors.Is(err, ErrInvalidDescriptor) {
				t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
			}
		})
	}
}

func TestValidate_RejectsReservedFlag(t *testing.T) {
	type in struct{ Force *bool }
	type out struct{}
	fn := func(c *widgetClient, ctx context.Context, _ *in, _ ...func(*widgetOptions)) (*out, error) {
		return &out{}, nil
	}
	d := New("widgets", "Reserved", fn).With(Bool("Force"))
	err := Validate(d)
	if err == nil || !strings.Contains(err.Error(), "reserved flag --force") {
		t.Fatalf("expected reserved flag error, got %v", err)
	}
}

func TestDescriptor_CallChecksClientType(t *testing.T) {
	d := widgetDescriptor()
	client := &widgetClient{}

	req := d.NewRequest().(*getWidgetInput)
	id := "42"
	req.WidgetId = &id

	out, err := d.Call(context.Background(), client, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := *out.(*getWidgetOutput).Name; got != "w-42" {
		t.Fatalf("got %q", got)
	}
	if client.calls != 1 {
		t.Fatalf("expected one call, got %d", client.calls)
	}

	if _, err := d.Call(context.Background(), "not a client", req); !errors.Is(err, ErrClientMismatch) {
		t.Fatalf("expected ErrClientMismatch, got %v", err)
	}
}

func TestDescriptor_PositionalAndPipeline(t *testing.T) {
	d := New("widgets", "GetWidget", widgetAPI.GetWidget).
		With(Int("Limit", At(2)), Str("WidgetId", At(1), Piped), Bool("Archived"))

	pos := d.Positional()
	if len(pos) != 2 || pos[0].Name != "WidgetId" || pos[1].Name != "Limit" {
		t.Fatalf("unexpected positional order: %+v", pos)
	}
	p, ok := d.PipelineParam()
	if !ok || p.Name != "WidgetId" {
		t.Fatalf("unexpected pipeline param: %+v", p)
	}
	if _, ok := d.Param("widget-id"); !ok {
		t.Fatalf("lookup by flag name failed")
	}
	if _, ok := d.Param("widgetid"); !ok {
		t.Fatalf("lookup by field name should ignore case")
	}
}

func TestList_SortedByServiceThenName(t *testing.T) {
	type in struct{}
	type out struct{}
	fn := func(c *widgetClient, ctx context.Context, _ *in, _ ...func(*widgetOptions)) (*out, error) {
		return &out{}, nil
	}
	r := NewRegistry().MustRegister(
		New("b", "Zeta", fn),
		New("a", "Omega", fn),
		New("b", "Alpha", fn),
	)

	var got []string
	for _, d := range r.List() {
		got = append(got, d.Service+"/"+d.Name)
	}
	want := "a/Omega b/Alpha b/Zeta"
	if strings.Join(got, " ") != want {
		t.Fatalf("got %v, want %s", got, want)
	}
	if s := r.Services(); len(s) != 2 || s[0] != "a" || s[1] != "b" {
		t.Fatalf("unexpected services %v", s)
	}
}
