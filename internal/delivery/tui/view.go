package tui

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
)

// menuItem is one selectable entry of the home screen.
type menuItem struct {
	mode     entities.Mode
	category entities.Category
	label    string
}

// homeMenu lists every mode and category pair in home screen order.
func homeMenu() []menuItem {
	sections := []struct {
		mode  entities.Mode
		all   string
		label string
	}{
		{entities.ModePractice, "전체 무작위 연습", "연습"},
		{entities.ModeStudy, "전체 목록 학습", "목록"},
		{entities.ModeTest, "실전 20문제 테스트", "테스트"},
	}

	items := make([]menuItem, 0, len(sections)*(len(entities.Categories)+1))
	for _, s := range sections {
		items = append(items, menuItem{mode: s.mode, category: entities.CategoryAll, label: s.all})
		for _, c := range entities.Categories {
			items = append(items, menuItem{mode: s.mode, category: c, label: fmt.Sprintf("%s %s", c, s.label)})
		}
	}
	return items
}

var sectionTitles = map[entities.Mode]string{
	entities.ModePractice: "1단계: 연습하기",
	entities.ModeStudy:    "참고: 목록 보기",
	entities.ModeTest:     "2단계: 테스트",
}

func renderHome(items []menuItem, cursor int, errMsg string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("순화어 마스터"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("한자어부터 최신 IT 용어까지, 엔터 한 번으로 끝내는 순화 연습"))
	b.WriteString("\n")

	var section entities.Mode
	for i, item := range items {
		if item.mode != section {
			section = item.mode
			b.WriteString(sectionStyle.Render(sectionTitles[section]))
			b.WriteString("\n")
		}
		if i == cursor {
			b.WriteString(cursorStyle.Render("> " + item.label))
		} else {
			b.WriteString("  " + item.label)
		}
		b.WriteString("\n")
	}

	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("↑/↓ 선택 · enter 시작 · q 종료"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("팁: 연습 모드에서 답을 입력하고 enter를 두 번 누르면 빠르게 다음 문제로 넘어갑니다."))
	return b.String()
}

// RenderList renders every session word with its accepted answers.
func RenderList(s *entities.Session) string {
	var b strings.Builder
	for i, w := range s.Words {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s  →  %s",
			mutedStyle.Render(fmt.Sprintf("[%s]", w.Category)),
			wordStyle.Render(w.Original),
			answerStyle.Render(strings.Join(w.Purified, ", ")),
		)
	}
	return b.String()
}

func renderListHeader(s *entities.Session) string {
	return fmt.Sprintf("%s  %s",
		titleStyle.Render("순화어 목록 학습"),
		mutedStyle.Render(fmt.Sprintf("%d개 항목", s.Len())),
	)
}

func renderListFooter() string {
	return mutedStyle.Render("↑/↓ 스크롤 · esc 홈으로")
}

// renderPractice renders the current practice word. input is the rendered text field.
func renderPractice(s *entities.Session, input string) string {
	w := s.Current()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s   %s\n",
		cursorStyle.Render(fmt.Sprintf("%d", s.Number())),
		mutedStyle.Render(fmt.Sprintf("/ %d", s.Len())),
		mutedStyle.Render(string(w.Category)),
	)
	b.WriteString(progressBar(s.Number(), s.Len(), 30))
	b.WriteString("\n")

	var card strings.Builder
	card.WriteString(mutedStyle.Render("다음 단어를 순화하시오"))
	card.WriteString("\n\n")
	card.WriteString(wordStyle.Render(w.Original))
	card.WriteString("\n\n")
	card.WriteString(input)

	style := cardStyle
	if s.Feedback.Shown {
		card.WriteString("\n\n")
		if s.Feedback.Correct {
			style = correctCardStyle
			card.WriteString(correctStyle.Render("O  완벽합니다! 🎉"))
		} else {
			style = wrongCardStyle
			card.WriteString(wrongStyle.Render("X  다시 확인해보세요!"))
		}
		card.WriteString("\n")
		card.WriteString(mutedStyle.Render("정답 리스트"))
		card.WriteString("\n")
		card.WriteString(answerStyle.Render(strings.Join(w.Purified, ", ")))
	}

	b.WriteString(style.Render(card.String()))
	b.WriteString("\n")
	if s.Feedback.Shown {
		b.WriteString(mutedStyle.Render("enter 다음 문제로 · esc 종료하고 나가기"))
	} else {
		b.WriteString(mutedStyle.Render("enter 정답 확인 · esc 종료하고 나가기"))
	}
	return b.String()
}

func renderPracticeSummary(s *entities.Session) string {
	body := fmt.Sprintf("🌟 %s\n\n총 %s개의 단어를 학습했습니다.\n정답 횟수: %s번",
		wordStyle.Render("연습 완료!"),
		cursorStyle.Render(fmt.Sprintf("%d", s.Len())),
		answerStyle.Render(fmt.Sprintf("%d", s.Score)),
	)
	return cardStyle.Render(body) + "\n" + mutedStyle.Render("enter 홈으로 돌아가기")
}

// renderTest renders the current test word. Correctness is never shown here.
func renderTest(s *entities.Session, input string) string {
	w := s.Current()

	var b strings.Builder
	fmt.Fprintf(&b, "%s   %s\n",
		answerStyle.Render(fmt.Sprintf("Q.%d", s.Number())),
		mutedStyle.Render(string(w.Category)),
	)
	b.WriteString(progressBar(s.Number(), s.Len(), 30))
	b.WriteString("\n")
	b.WriteString(cardStyle.Render(wordStyle.Render(w.Original) + "\n\n" + input))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter 다음 문제 · esc 종료하고 나가기"))
	return b.String()
}

func renderTestSummary(s *entities.Session, pointsPerQuestion int) string {
	body := fmt.Sprintf("🎯 %s\n\n%s\n총 %d문제 중 %d문제를 맞혔습니다.",
		wordStyle.Render("테스트 종료"),
		scoreStyle.Render(fmt.Sprintf("%d점", s.Points(pointsPerQuestion))),
		s.Len(),
		s.Score,
	)
	return cardStyle.Render(body) + "\n" + mutedStyle.Render("enter 결과 닫기")
}

func renderConfirm() string {
	return modalStyle.Render("진행 중인 내용이 사라집니다. 홈으로 가시겠습니까?\n\n" +
		mutedStyle.Render("y 나가기 · n 계속하기"))
}

func progressBar(current, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := max(0, min(current*width/total, width))
	return cursorStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled))
}
