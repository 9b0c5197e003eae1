package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/npillmayer/elemental/elements"
)

const banner = "NOT POSSIBLE\n=============\nresults:"

// paint decorates a fragment of output.
type paint func(string) string

func plain(s string) string { return s }

func styled(st lipgloss.Style) paint {
	return func(s string) string { return st.Render(s) }
}

type textStyles struct {
	word, symbol, unmatched, detail, banner paint
}

func plainStyles() textStyles {
	return textStyles{word: plain, symbol: plain, unmatched: plain, detail: plain, banner: plain}
}

func colorStyles(r *lipgloss.Renderer) textStyles {
	alert := lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}
	return textStyles{
		word: styled(r.NewStyle().Bold(true)),
		symbol: styled(r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})),
		unmatched: styled(r.NewStyle().Bold(true).Foreground(alert)),
		detail: styled(r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"})),
		banner: styled(r.NewStyle().Bold(true).Foreground(alert)),
	}
}

// textRenderer prints one line spelling the word, followed by one line per
// piece:
//
//	bacon => Ba Co N
//	  Ba   Barium         p=56  n=81  e=56
//	  Co   Cobalt         p=27  n=32  e=27
//	  N    Nitrogen       p=7   n=7   e=7
type textRenderer struct {
	opts    Options
	colored bool
	styles  textStyles
}

func (tr *textRenderer) Render(w io.Writer, word string, pieces []elements.Piece) error {
	st := tr.styles
	if tr.colored {
		st = colorStyles(lipgloss.NewRenderer(w))
	}
	var b strings.Builder
	if tr.opts.Banner && !Possible(pieces) {
		b.WriteString(st.banner(banner))
		b.WriteByte('\n')
	}
	spelled := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p.Matched() {
			spelled = append(spelled, st.symbol(p.Value.Symbol))
		} else {
			spelled = append(spelled, st.unmatched("["+p.Text+"]"))
		}
	}
	fmt.Fprintf(&b, "%s => %s\n", st.word(word), strings.Join(spelled, " "))
	for _, p := range pieces {
		if !p.Matched() {
			fmt.Fprintf(&b, "  %s %s\n", st.unmatched(fmt.Sprintf("%-4s", p.Text)),
				st.detail("(no element)"))
			continue
		}
		e := p.Value
		fmt.Fprintf(&b, "  %s %s\n", st.symbol(fmt.Sprintf("%-4s", e.Symbol)),
			st.detail(fmt.Sprintf("%-14s p=%-3d n=%-3d e=%d", e.Name, e.Protons, e.Neutrons, e.Electrons)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
