package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
)

// buildHomeKeyboard builds the mode and category selection keyboard.
func buildHomeKeyboard() tgbotapi.InlineKeyboardMarkup {
	modes := []struct {
		mode  entities.Mode
		all   string
		label string
	}{
		{entities.ModePractice, "🏃 전체 무작위 연습", "연습"},
		{entities.ModeStudy, "📚 전체 목록 학습", "목록"},
		{entities.ModeTest, "✏️ 실전 20문제 테스트", "테스트"},
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(modes)*2)
	for _, m := range modes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(m.all, buildStartCallback(m.mode, entities.CategoryAll)),
		))

		row := make([]tgbotapi.InlineKeyboardButton, 0, len(entities.Categories))
		for _, c := range entities.Categories {
			label := fmt.Sprintf("%s %s", c, m.label)
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildStartCallback(m.mode, c)))
		}
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildListKeyboard builds pagination keyboard for the word list.
func buildListKeyboard(page, totalPages int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if totalPages > 1 {
		var row []tgbotapi.InlineKeyboardButton
		if page > 0 {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ 이전", buildListCallback(page-1)))
		}
		if page < totalPages-1 {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData("다음 ▶️", buildListCallback(page+1)))
		}
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("← 홈으로", buildHomeCallback(homeMenu)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildNextKeyboard builds keyboard shown under practice feedback.
func buildNextKeyboard(number int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("다음 문제로 ▶️", buildNextCallback(number)),
		),
	)
}

// buildConfirmHomeKeyboard builds keyboard for leaving an unfinished session.
func buildConfirmHomeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ 종료하고 나가기", buildHomeCallback(homeConfirm)),
			tgbotapi.NewInlineKeyboardButtonData("❌ 계속하기", buildHomeCallback(homeCancel)),
		),
	)
}

// buildResultKeyboard builds keyboard for the session summary.
func buildResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 홈으로 돌아가기", buildHomeCallback(homeMenu)),
		),
	)
}
