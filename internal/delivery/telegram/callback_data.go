package telegram

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
)

// Callback action constants.
const (
	actionStart = "start"
	actionNext  = "next"
	actionList  = "list"
	actionHome  = "home"
)

// Home sub-actions.
const (
	homeMenu    = "menu"
	homeConfirm = "confirm"
	homeCancel  = "cancel"
)

// Category codes keep callback data short and ASCII; Telegram limits it to 64 bytes.
var categoryCodes = map[entities.Category]string{
	entities.CategoryAll:        "all",
	entities.CategorySinoKorean: "sino",
	entities.CategoryLoanword:   "loan",
	entities.CategoryRecent:     "recent",
}

func encodeCategory(c entities.Category) string {
	return categoryCodes[c]
}

func decodeCategory(code string) (entities.Category, bool) {
	for c, cc := range categoryCodes {
		if cc == code {
			return c, true
		}
	}
	return "", false
}

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam parses the i-th parameter as an integer.
func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil {
		return 0, false
	}
	return n, true
}

// buildStartCallback builds callback data for starting a session.
func buildStartCallback(mode entities.Mode, category entities.Category) string {
	return callbackData{
		Action: actionStart,
		Params: []string{string(mode), encodeCategory(category)},
	}.encode()
}

// buildNextCallback builds callback data for leaving practice feedback.
// The word number guards against presses on stale messages.
func buildNextCallback(number int) string {
	return callbackData{
		Action: actionNext,
		Params: []string{strconv.Itoa(number)},
	}.encode()
}

// buildListCallback builds callback data for opening a list page.
func buildListCallback(page int) string {
	return callbackData{
		Action: actionList,
		Params: []string{strconv.Itoa(page)},
	}.encode()
}

// buildHomeCallback builds callback data for returning home.
func buildHomeCallback(subAction string) string {
	return callbackData{
		Action: actionHome,
		Params: []string{subAction},
	}.encode()
}
