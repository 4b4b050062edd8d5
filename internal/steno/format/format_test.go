package format

import (
	"reflect"
	"testing"

	"github.com/stenoglyph/steno/internal/steno/dictionary"
)

func action(set dictionary.ActionSet) dictionary.Atom {
	return dictionary.Atom{Kind: dictionary.TextAction, Actions: set}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Fatalf("got %q want empty", got)
	}
}

func TestRenderBasic(t *testing.T) {
	got := Render([]dictionary.Atom{
		dictionary.NewLit("hello"),
		dictionary.NewLit("hi"),
	})
	if want := " hello hi"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderLineStart(t *testing.T) {
	got := Render([]dictionary.Atom{
		action(dictionary.ActionSet{dictionary.SpaceNext: false, dictionary.CaseNext: true}),
		dictionary.NewLit("hello"),
		dictionary.NewLit("hi"),
	})
	if want := "Hello hi"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderTextActions(t *testing.T) {
	got := Render([]dictionary.Atom{
		action(dictionary.ActionSet{dictionary.SpaceNext: false, dictionary.CaseNext: true}),
		dictionary.NewLit("hello"),
		dictionary.NewLit("hi"),
		action(dictionary.ActionSet{dictionary.CaseNext: true}),
		dictionary.NewLit("FOo"),
		dictionary.NewLit("bar"),
		dictionary.NewLit("baZ"),
		action(dictionary.ActionSet{dictionary.CaseNext: false}),
		action(dictionary.ActionSet{dictionary.SpaceNext: false}),
		dictionary.NewLit("NICE"),
		action(dictionary.ActionSet{dictionary.SpaceNext: false}),
		dictionary.NewLit(""),
		dictionary.NewLit("well done"),
	})
	if want := "Hello hi FOo bar baZnICE well done"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderGlued(t *testing.T) {
	got := Render([]dictionary.Atom{
		dictionary.NewLit("hello"),
		dictionary.NewGlued("hi"),
		dictionary.NewGlued("hi"),
		dictionary.NewLit("foo"),
		dictionary.NewGlued("two"),
		dictionary.NewGlued("three"),
		action(dictionary.ActionSet{dictionary.SpacePrev: true}),
	})
	if want := " hello hihi foo two three"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestMergeTranslationsCoalescesConsecutiveActions(t *testing.T) {
	got := merge([]dictionary.Atom{
		action(dictionary.ActionSet{dictionary.SpaceNext: true, dictionary.CaseNext: true}),
		dictionary.NewLit("hello"),
		dictionary.NewLit("hi"),
		action(dictionary.ActionSet{dictionary.CaseNext: false}),
		action(dictionary.ActionSet{dictionary.CasePrev: true}),
		action(dictionary.ActionSet{dictionary.SpacePrev: false}),
		dictionary.NewLit("FOo"),
		action(dictionary.ActionSet{dictionary.CasePrev: false}),
		dictionary.NewLit("FOo"),
		action(dictionary.ActionSet{dictionary.CaseNext: true, dictionary.CasePrev: true}),
	})

	want := []unit{
		{kind: kindActions, actions: dictionary.ActionSet{dictionary.SpaceNext: true, dictionary.CaseNext: true}},
		{kind: kindLit, text: "hello"},
		{kind: kindLit, text: "hi"},
		{kind: kindActions, actions: dictionary.ActionSet{dictionary.CaseNext: false, dictionary.CasePrev: true, dictionary.SpacePrev: false}},
		{kind: kindLit, text: "FOo"},
		{kind: kindActions, actions: dictionary.ActionSet{dictionary.CasePrev: false}},
		{kind: kindLit, text: "FOo"},
		{kind: kindActions, actions: dictionary.ActionSet{dictionary.CaseNext: true, dictionary.CasePrev: true}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestMergeApplyOrthography(t *testing.T) {
	got := merge([]dictionary.Atom{
		dictionary.NewLit("fancy"),
		dictionary.NewAttached("s"),
		action(dictionary.ActionSet{dictionary.CasePrev: true}),
		dictionary.NewLit("hello"),
		dictionary.NewLit("bite"),
		dictionary.NewAttached("ing"),
		dictionary.NewAttached("s"),
		action(dictionary.ActionSet{dictionary.CaseNext: true}),
		dictionary.NewAttached("ed"),
	})

	want := []unit{
		{kind: kindLit, text: "fancies"},
		{kind: kindActions, actions: dictionary.ActionSet{dictionary.CasePrev: true}},
		{kind: kindLit, text: "hello"},
		{kind: kindLit, text: "bitings"},
		{kind: kindActions, actions: dictionary.ActionSet{dictionary.CaseNext: true, dictionary.SpaceNext: false}},
		{kind: kindLit, text: "ed"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestMergeSpacesAttachedAtStart(t *testing.T) {
	got := merge([]dictionary.Atom{
		dictionary.NewAttached(" "),
		action(dictionary.ActionSet{dictionary.SpaceNext: false}),
		dictionary.NewAttached(" "),
		action(dictionary.ActionSet{dictionary.SpaceNext: false}),
	})

	want := []unit{
		{kind: kindActions, actions: dictionary.ActionSet{dictionary.SpaceNext: false}},
		{kind: kindLit, text: " "},
		{kind: kindActions, actions: dictionary.ActionSet{dictionary.SpaceNext: false}},
		{kind: kindLit, text: " "},
		{kind: kindActions, actions: dictionary.ActionSet{dictionary.SpaceNext: false}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestChangeFirstLetter(t *testing.T) {
	cases := []struct{ word, want string }{
		{"hello", "Hello"},
		{"", ""},
		{"Hello", "Hello"},
	}
	for _, c := range cases {
		if got := changeFirstLetter(c.word, true); got != c.want {
			t.Errorf("changeFirstLetter(%q, true) = %q want %q", c.word, got, c.want)
		}
	}
}

func TestDigitOnlyLitBecomesGlued(t *testing.T) {
	got := merge([]dictionary.Atom{dictionary.NewLit("123")})
	want := []unit{{kind: kindGlued, text: "123"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestUnknownStrokeDigitsBecomeGluedWithoutDashes(t *testing.T) {
	got := merge([]dictionary.Atom{dictionary.NewUnknownStroke("1-2-3")})
	want := []unit{{kind: kindGlued, text: "123"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestRenderFoldsCommandTextAfterIntoFollowingText(t *testing.T) {
	after := "{^}{-|}"
	cmd := dictionary.NewCommand(nil, &after, false)
	got := Render([]dictionary.Atom{
		dictionary.NewLit("hello"),
		cmd,
		dictionary.NewLit("world"),
	})
	if want := " helloWorld"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestMergeIgnoresCommandWithNoTextAfter(t *testing.T) {
	got := merge([]dictionary.Atom{
		dictionary.NewLit("hello"),
		dictionary.NewCommand(nil, nil, false),
		dictionary.NewLit("world"),
	})

	want := []unit{
		{kind: kindLit, text: "hello"},
		{kind: kindLit, text: "world"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestExtractCommandsSplitsTrailingRun(t *testing.T) {
	lit := dictionary.NewLit("hi")
	cmd := dictionary.NewCommand(nil, nil, false)
	text, cmds := ExtractCommands([]dictionary.Atom{lit, cmd, cmd})
	if len(text) != 1 || len(cmds) != 2 {
		t.Fatalf("got text=%d cmds=%d", len(text), len(cmds))
	}
}
