// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Plain messages.
const (
	msgInternalError   = "문제가 발생했습니다. 잠시 후 다시 시도해 주세요."
	msgUnknownCommand  = "알 수 없는 명령입니다. /help 로 사용법을 확인하세요."
	msgUnknownCategory = "알 수 없는 분류입니다. 한자어, 외래어, 최신 순화어 중 하나를 입력하세요."
	msgNoSession       = "진행 중인 학습이 없습니다. 아래에서 모드를 선택하세요."
	msgNoWords         = "선택한 분류에 단어가 없습니다."
	msgStudyHint       = "목록 보기에서는 답을 입력하지 않습니다. 연습이나 테스트를 시작하세요."
	msgConfirmHome     = "진행 중인 내용이 사라집니다. 홈으로 가시겠습니까?"
	msgKeepGoing       = "계속 진행합니다."
	msgExpired         = "이미 지난 메시지입니다."
)

const msgHelp = "순화어 마스터 사용법\n\n" +
	"/start — 홈 화면\n" +
	"/study [분류] — 목록 보기\n" +
	"/practice [분류] — 연습하기 (즉시 채점)\n" +
	"/test [분류] — 실전 20문제 테스트\n" +
	"/home — 종료하고 홈으로\n\n" +
	"분류: 한자어, 외래어, 최신 순화어 (생략하면 전체)\n\n" +
	"연습 중에는 답을 보낸 뒤 아무 메시지나 한 번 더 보내면 다음 문제로 넘어갑니다."

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// welcomeMarkdownV2 builds the home screen text.
func welcomeMarkdownV2() string {
	var sb strings.Builder

	sb.WriteString(bold("순화어 마스터"))
	sb.WriteString("\n")
	sb.WriteString(italic("실용글쓰기 완벽 대비"))
	sb.WriteString("\n\n")
	sb.WriteString(md("한자어부터 최신 IT 용어까지, 순화어를 익혀 보세요."))
	sb.WriteString("\n\n")
	sb.WriteString(md("🏃 연습하기: 답을 보내면 바로 정답 여부를 알려줍니다."))
	sb.WriteString("\n")
	sb.WriteString(md("📚 목록 보기: 순화 대상어와 정답을 한눈에 훑어봅니다."))
	sb.WriteString("\n")
	sb.WriteString(md("✏️ 테스트: 20문제를 풀고 마지막에 점수를 확인합니다."))

	return sb.String()
}
