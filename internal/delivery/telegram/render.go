package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
)

const wordsPerPage = 5

// renderListPage renders one page of the study list.
func renderListPage(s *entities.Session, page int) (text string, totalPages int) {
	totalPages = (s.Len() + wordsPerPage - 1) / wordsPerPage
	if totalPages == 0 || page < 0 || page >= totalPages {
		return "", totalPages
	}

	start := page * wordsPerPage
	end := min(start+wordsPerPage, s.Len())

	var b strings.Builder
	b.WriteString(bold("📚 순화어 목록 학습"))
	b.WriteString(md(fmt.Sprintf(" (%d개 항목, %d/%d쪽)", s.Len(), page+1, totalPages)))
	for _, w := range s.Words[start:end] {
		b.WriteString("\n\n")
		b.WriteString(italic(string(w.Category)))
		b.WriteString("\n")
		b.WriteString(bold(w.Original))
		b.WriteString(md(" → " + strings.Join(w.Purified, ", ")))
	}

	return b.String(), totalPages
}

// renderQuestion renders the current word of a practice or test session.
func renderQuestion(s *entities.Session) string {
	w := s.Current()

	var header string
	if s.Mode == entities.ModeTest {
		header = fmt.Sprintf("Q.%d · %s", s.Number(), w.Category)
	} else {
		header = fmt.Sprintf("%d / %d · %s", s.Number(), s.Len(), w.Category)
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s",
		md(header),
		md(buildProgressBar(s.Number(), s.Len(), 10)),
		bold(w.Original),
		italic("다음 단어를 순화하시오"),
	)
}

// renderFeedback renders the practice feedback for the current word.
func renderFeedback(s *entities.Session) string {
	w := s.Current()

	mark, verdict := "❌", "다시 확인해보세요!"
	if s.Feedback.Correct {
		mark, verdict = "⭕", "완벽합니다! 🎉"
	}

	return fmt.Sprintf("%s %s\n\n%s\n%s",
		md(mark),
		bold(verdict),
		md("정답 리스트"),
		bold(strings.Join(w.Purified, ", ")),
	)
}

// renderPracticeSummary renders the end of a practice session.
func renderPracticeSummary(s *entities.Session) string {
	return fmt.Sprintf("🌟 %s\n\n%s\n%s",
		bold("연습 완료!"),
		md(fmt.Sprintf("총 %d개의 단어를 학습했습니다.", s.Len())),
		md(fmt.Sprintf("정답 횟수: %d번", s.Score)),
	)
}

// renderTestSummary renders the final score of a test session.
func renderTestSummary(s *entities.Session, pointsPerQuestion int) string {
	return fmt.Sprintf("🎯 %s\n\n%s\n%s",
		bold("테스트 종료"),
		bold(fmt.Sprintf("%d점", s.Points(pointsPerQuestion))),
		md(fmt.Sprintf("총 %d문제 중 %d문제를 맞혔습니다.", s.Len(), s.Score)),
	)
}

// buildProgressBar renders a fixed-width bar for current out of total.
func buildProgressBar(current, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := current * width / total
	filled = max(0, min(filled, width))
	return strings.Repeat("▓", filled) + strings.Repeat("░", width-filled)
}
