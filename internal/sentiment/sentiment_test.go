package sentiment

import (
	"math"
	"testing"
)

func TestScore_InRange(t *testing.T) {
	a := NewAnalyzer()
	texts := []string{
		"",
		"Loved the burger and fries, great delivery!",
		"Delivery was late and packaging was bad.",
		"absolutely amazing wonderful fantastic perfect excellent awesome",
		"worst horrible awful terrible disgusting hate hate hate",
		"the pizza arrived",
	}
	for _, text := range texts {
		got := a.Score(text)
		if got < -1 || got > 1 {
			t.Errorf("Score(%q) = %f, out of [-1, 1]", text, got)
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	a := NewAnalyzer()
	text := "Quality is amazing. The price is fair. Support team was helpful."
	first := a.Score(text)
	for i := 0; i < 10; i++ {
		if got := a.Score(text); got != first {
			t.Fatalf("run %d: Score = %f, want %f", i, got, first)
		}
	}
}

func TestScore_Polarity(t *testing.T) {
	a := NewAnalyzer()
	tests := []struct {
		name string
		text string
		want string // expected label of the score
	}{
		{"positive review", "Loved the burger and fries, great delivery!", "Positive"},
		{"negative review", "Delivery was late and packaging was bad.", "Negative"},
		{"no sentiment words", "the pizza arrived on a tuesday", "Neutral"},
		{"empty input", "", "Neutral"},
		{"negated positive", "the support was not helpful", "Negative"},
		{"negated contraction", "I don't like the new app design", "Negative"},
		{"boosted positive", "really amazing taste", "Positive"},
		{"mixed leaning negative", "good price but awful horrible taste", "Negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := a.Score(tt.text)
			if got := Label(score); got != tt.want {
				t.Errorf("Label(Score(%q)) = %s (score %f), want %s", tt.text, got, score, tt.want)
			}
		})
	}
}

func TestScore_EmptyIsZero(t *testing.T) {
	a := NewAnalyzer()
	if got := a.Score(""); got != 0 {
		t.Errorf("Score(\"\") = %f, want 0", got)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	a := NewAnalyzer()
	if a.Score("GREAT taste") != a.Score("great taste") {
		t.Error("scoring should be case-insensitive")
	}
}

func TestScore_NegationDampens(t *testing.T) {
	a := NewAnalyzer()
	plain := a.Score("happy")
	negated := a.Score("not happy")
	if plain <= 0 {
		t.Fatalf("Score(\"happy\") = %f, want > 0", plain)
	}
	if negated >= 0 {
		t.Errorf("Score(\"not happy\") = %f, want < 0", negated)
	}
	if math.Abs(negated) >= math.Abs(plain) {
		t.Errorf("negated magnitude %f should be dampened below %f", math.Abs(negated), math.Abs(plain))
	}
}

func TestScore_CustomLexicon(t *testing.T) {
	a := NewAnalyzerWithLexicon(map[string]float64{"zorp": 3.0})
	if got := a.Score("zorp"); got <= 0 {
		t.Errorf("Score with custom lexicon = %f, want > 0", got)
	}
	if got := a.Score("great"); got != 0 {
		t.Errorf("custom lexicon should not know %q, got %f", "great", got)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.5, "Positive"},
		{0.051, "Positive"},
		{0.05, "Neutral"},
		{0.0, "Neutral"},
		{-0.05, "Neutral"},
		{-0.051, "Negative"},
		{-0.5, "Negative"},
	}
	for _, tt := range tests {
		if got := Label(tt.score); got != tt.want {
			t.Errorf("Label(%f) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestLabelPtr_NilIsNeutral(t *testing.T) {
	if got := LabelPtr(nil); got != "Neutral" {
		t.Errorf("LabelPtr(nil) = %s, want Neutral", got)
	}
	v := 0.5
	if got := LabelPtr(&v); got != "Positive" {
		t.Errorf("LabelPtr(0.5) = %s, want Positive", got)
	}
}

func TestNormalize_Bounds(t *testing.T) {
	if got := normalize(1000); got > 1 || got < 0.99 {
		t.Errorf("normalize(1000) = %f, want just under 1", got)
	}
	if got := normalize(-1000); got < -1 || got > -0.99 {
		t.Errorf("normalize(-1000) = %f, want just above -1", got)
	}
	if got := normalize(0); got != 0 {
		t.Errorf("normalize(0) = %f, want 0", got)
	}
}
