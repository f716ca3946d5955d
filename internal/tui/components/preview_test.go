package components

import (
	"strings"
	"testing"
	"time"

	"github.com/opencode-ai/emailpro/internal/templates"
	"github.com/opencode-ai/emailpro/internal/tui/styles"
)

func TestPreviewScrollClamps(t *testing.T) {
	preview := NewPreview()
	preview.Height = 4
	preview.SetContent("a\nb\nc\nd\ne\nf", nil)

	preview.ScrollDown(10)
	if preview.ScrollOffset != 3 {
		t.Fatalf("expected ScrollOffset 3, got %d", preview.ScrollOffset)
	}
	preview.ScrollUp(10)
	if preview.ScrollOffset != 0 {
		t.Fatalf("expected ScrollOffset 0, got %d", preview.ScrollOffset)
	}
}

func TestPreviewShrinkingContentAdjustsScroll(t *testing.T) {
	preview := NewPreview()
	preview.Height = 3
	preview.SetContent("a\nb\nc\nd\ne", nil)
	preview.ScrollDown(3)

	preview.SetContent("a\nb\nc", nil)
	if preview.ScrollOffset != 1 {
		t.Fatalf("expected ScrollOffset 1, got %d", preview.ScrollOffset)
	}
}

func TestPreviewRender(t *testing.T) {
	styleSet := styles.DefaultStyles()
	preview := NewPreview()

	if out := preview.Render(styleSet); !strings.Contains(out, "Nothing to preview.") {
		t.Fatalf("expected empty message, got %q", out)
	}

	preview.Height = 3
	preview.SetContent("Hi [Name],\nline two\nline three\nline four", []string{"Name"})
	out := preview.Render(styleSet)
	if !strings.Contains(out, "[Name]") {
		t.Fatalf("expected unfilled marker kept, got %q", out)
	}
	if !strings.Contains(out, "1-2 of 4") {
		t.Fatalf("expected scroll indicator, got %q", out)
	}
}

func TestPreviewRenderFullyFilled(t *testing.T) {
	styleSet := styles.DefaultStyles()
	preview := NewPreview()
	preview.SetContent("Hi Priya,\nThanks for the review.", nil)

	out := preview.Render(styleSet)
	for _, want := range []string{"Hi Priya,", "Thanks for the review."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Fatalf("expected two lines without a scroll indicator, got %q", out)
	}
}

func TestPlaceholderFormFocusWraps(t *testing.T) {
	form := NewPlaceholderForm(&templates.Template{Placeholders: []string{"Name", "Option 1"}})

	if form.Focused() != "Name" {
		t.Fatalf("expected Name, got %q", form.Focused())
	}
	form.Prev()
	if form.Focused() != "Option 1" {
		t.Fatalf("expected Option 1, got %q", form.Focused())
	}
	form.Next()
	if form.Focused() != "Name" {
		t.Fatalf("expected Name, got %q", form.Focused())
	}
}

func TestPlaceholderFormRender(t *testing.T) {
	styleSet := styles.DefaultStyles()

	empty := NewPlaceholderForm(nil)
	if empty.Focused() != "" {
		t.Fatalf("expected no focus, got %q", empty.Focused())
	}
	empty.Next()
	if out := strings.Join(empty.Render(styleSet, nil, 40, true), "\n"); !strings.Contains(out, "no placeholders") {
		t.Fatalf("expected no-placeholder message, got %q", out)
	}

	form := NewPlaceholderForm(&templates.Template{Placeholders: []string{"Name", "duration"}})
	out := strings.Join(form.Render(styleSet, map[string]string{"Name": "Sam"}, 40, true), "\n")
	if !strings.Contains(out, "Sam") {
		t.Fatalf("expected value, got %q", out)
	}
	if !strings.Contains(out, "Enter duration...") {
		t.Fatalf("expected hint, got %q", out)
	}
}

func TestToastExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	toast := CopySucceeded()
	if toast.Expired(now) {
		t.Fatal("toast without expiry should not expire")
	}
	toast.ExpiresAt = now.Add(time.Second)
	if toast.Expired(now) {
		t.Fatal("toast expired early")
	}
	if !toast.Expired(now.Add(time.Second)) {
		t.Fatal("toast should expire at ExpiresAt")
	}
}

func TestToastRender(t *testing.T) {
	styleSet := styles.DefaultStyles()

	if out := CopySucceeded().Render(styleSet); !strings.Contains(out, "Copied to clipboard") {
		t.Fatalf("unexpected success toast %q", out)
	}
	if out := CopyFailed().Render(styleSet); !strings.Contains(out, "Please try again or copy manually.") {
		t.Fatalf("unexpected failure toast %q", out)
	}
}

func TestBadges(t *testing.T) {
	styleSet := styles.DefaultStyles()

	if lines := RenderCategoryBadges(styleSet, nil, 40); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
	lines := RenderCategoryBadges(styleSet, []string{"Communication", "Feedback", "Updates", "Networking"}, 20)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %v", lines)
	}

	if out := RenderCopyButton(styleSet, true); !strings.Contains(out, "Copied!") {
		t.Fatalf("unexpected copied button %q", out)
	}
	if out := RenderCopyButton(styleSet, false); !strings.Contains(out, "Copy") {
		t.Fatalf("unexpected copy button %q", out)
	}
}
