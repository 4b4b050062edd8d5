package diff

import (
	"reflect"
	"testing"

	"github.com/stenoglyph/steno/internal/steno/command"
	"github.com/stenoglyph/steno/internal/steno/dictionary"
)

func action(set dictionary.ActionSet) dictionary.Atom {
	return dictionary.Atom{Kind: dictionary.TextAction, Actions: set}
}

func cmdAtom(cmds []command.Command, suppress bool) dictionary.Atom {
	return dictionary.NewCommand(cmds, nil, suppress)
}

func TestTranslateSame(t *testing.T) {
	old := []dictionary.Atom{dictionary.NewLit("Hello"), dictionary.NewLit("Hi")}
	got := Translate(old, old)
	want := []command.Command{command.NoOp}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTranslateEmpty(t *testing.T) {
	got := Translate(nil, nil)
	want := []command.Command{command.NoOp}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTranslateOneEmpty(t *testing.T) {
	got := Translate(nil, []dictionary.Atom{dictionary.NewLit("Hello")})
	want := []command.Command{command.AddText(" Hello")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTranslateOneCommandEmpty(t *testing.T) {
	got := Translate(nil, []dictionary.Atom{cmdAtom([]command.Command{command.PrintHello}, false)})
	want := []command.Command{command.PrintHello}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTranslateSimpleAdd(t *testing.T) {
	old := []dictionary.Atom{dictionary.NewLit("Hello")}
	new := []dictionary.Atom{dictionary.NewLit("Hello"), dictionary.NewLit("Hi")}
	got := Translate(old, new)
	want := []command.Command{command.AddText(" Hi")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTranslateCorrection(t *testing.T) {
	old := []dictionary.Atom{dictionary.NewLit("Hello")}
	new := []dictionary.Atom{dictionary.NewLit("He..llo")}
	got := Translate(old, new)
	want := []command.Command{command.Replace(3, "..llo")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTranslateDeletion(t *testing.T) {
	old := []dictionary.Atom{dictionary.NewLit("Hello")}
	got := Translate(old, nil)
	want := []command.Command{command.Replace(6, "")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTranslateUnknownCorrection(t *testing.T) {
	old := []dictionary.Atom{dictionary.NewLit("Hello"), dictionary.NewUnknownStroke("WUPB")}
	new := []dictionary.Atom{dictionary.NewLit("Hello"), dictionary.NewLit("Won")}
	got := Translate(old, new)
	want := []command.Command{command.Replace(3, "on")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTranslatePrevWordTextActions(t *testing.T) {
	old := []dictionary.Atom{dictionary.NewLit("Hello"), dictionary.NewLit("world")}
	new := []dictionary.Atom{
		dictionary.NewLit("Hello"),
		dictionary.NewLit("world"),
		action(dictionary.ActionSet{dictionary.CasePrev: true}),
	}
	got := Translate(old, new)
	want := []command.Command{command.Replace(5, "World")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTranslateSameCommandIsNoOp(t *testing.T) {
	old := []dictionary.Atom{
		dictionary.NewLit("Hello"),
		cmdAtom([]command.Command{command.PrintHello}, false),
		cmdAtom([]command.Command{command.PrintHello}, false),
	}
	got := Translate(old, old)
	want := []command.Command{command.NoOp}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTranslateRepeatedCommand(t *testing.T) {
	old := []dictionary.Atom{
		cmdAtom([]command.Command{command.PrintHello}, false),
		cmdAtom([]command.Command{command.PrintHello}, false),
	}
	new := append(append([]dictionary.Atom{}, old...), cmdAtom([]command.Command{command.PrintHello}, false))
	got := Translate(old, new)
	want := []command.Command{command.PrintHello}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTranslateExternalCommand(t *testing.T) {
	old := []dictionary.Atom{dictionary.NewLit("Hello"), dictionary.NewLit("world")}
	new := append(append([]dictionary.Atom{}, old...), cmdAtom([]command.Command{command.PrintHello}, false))
	got := Translate(old, new)
	want := []command.Command{command.PrintHello}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTranslateSuppressSpaceBeforeRetractsTrailingSpace(t *testing.T) {
	// Render([]dictionary.Atom{NewLit("")}) produces a lone trailing space,
	// giving suppress_space_before something to retract.
	old := []dictionary.Atom{dictionary.NewLit("")}
	new := append(append([]dictionary.Atom{}, old...), cmdAtom([]command.Command{command.PrintHello}, true))
	got := Translate(old, new)
	want := []command.Command{command.Replace(1, ""), command.PrintHello}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestTextDiffUnicode(t *testing.T) {
	got := textDiff(" ——a", " —Ω")
	want := command.Replace(2, "Ω")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}
