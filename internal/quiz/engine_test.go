package quiz

import "testing"

func TestCorrectAnswerScoring(t *testing.T) {
	tests := []struct {
		name       string
		comboGoing int // correct answers scored before the one under test
		timeLeft   int
		want       int
	}{
		{"no combo full time", 0, 15, 175},          // (100+75) * 1.0
		{"no combo no time left", 0, 0, 100},        // 100 * 1.0
		{"combo of two", 2, 10, 210},                // (100+50) * 1.4
		{"combo of five", 5, 3, 230},                // (100+15) * 2.0
		{"negative time treated as zero", 0, -1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("crypto-quiz", 10)
			for i := 0; i < tt.comboGoing; i++ {
				s.Correct(0)
			}
			if got := s.Correct(tt.timeLeft); got != tt.want {
				t.Errorf("Correct(%d) with combo %d = %d, want %d", tt.timeLeft, tt.comboGoing, got, tt.want)
			}
		})
	}
}

func TestComboResetsOnMiss(t *testing.T) {
	s := NewSession("crypto-quiz", 10)

	s.Correct(10)
	s.Correct(10)
	s.Correct(10)
	if s.Combo() != 3 {
		t.Fatalf("combo = %d, want 3", s.Combo())
	}

	s.Wrong()
	if s.Combo() != 0 {
		t.Errorf("combo after miss = %d, want 0", s.Combo())
	}
	if s.MaxCombo() != 3 {
		t.Errorf("maxCombo = %d, want 3", s.MaxCombo())
	}

	s.Timeout()
	if s.Combo() != 0 {
		t.Errorf("combo after timeout = %d, want 0", s.Combo())
	}
}

func TestSummaryXP(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		wrong     int
		total     int
		baseXP    int
		wantXP    int
	}{
		{"perfect run", 10, 0, 10, 30, 60},  // 30 * 1.0 * (1 + 10*0.1)
		{"all wrong", 0, 10, 10, 30, 0},
		{"half right in a row", 5, 5, 10, 30, 22}, // 30 * 0.5 * 1.5
		{"empty session", 0, 0, 0, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("crypto-quiz", tt.total)
			for i := 0; i < tt.correct; i++ {
				s.Correct(5)
			}
			for i := 0; i < tt.wrong; i++ {
				s.Wrong()
			}

			xp, details := s.Summary(tt.baseXP)
			if xp != tt.wantXP {
				t.Errorf("xp = %d, want %d", xp, tt.wantXP)
			}
			if details.CorrectAnswers != tt.correct {
				t.Errorf("correctAnswers = %d, want %d", details.CorrectAnswers, tt.correct)
			}
			if details.TotalQuestions != tt.total {
				t.Errorf("totalQuestions = %d, want %d", details.TotalQuestions, tt.total)
			}
		})
	}
}

func TestModuleQuizScore(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{3, 3, 100},
		{2, 3, 67},
		{1, 3, 33},
		{0, 3, 0},
		{7, 10, 70},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := ModuleQuizScore(tt.correct, tt.total); got != tt.want {
			t.Errorf("ModuleQuizScore(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}
