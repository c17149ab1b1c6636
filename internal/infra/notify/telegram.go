package notify

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier шлёт односторонние уведомления в админский чат.
// Если токен не задан, Notifier == nil и все вызовы — no-op,
// консоль работает без Telegram.
type Notifier struct {
	api       *tgbotapi.BotAPI
	log       *slog.Logger
	adminChat int64
}

func New(token string, adminChat int64, log *slog.Logger) (*Notifier, error) {
	if token == "" || adminChat == 0 {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Notifier{api: api, log: log, adminChat: adminChat}, nil
}

func (n *Notifier) send(text string) {
	if n == nil {
		return
	}
	if _, err := n.api.Send(tgbotapi.NewMessage(n.adminChat, text)); err != nil {
		n.log.Error("notify send failed", "err", err)
	}
}

func (n *Notifier) ReservationCreated(code string, total float64, currency string) {
	n.send(fmt.Sprintf("Новая бронь %s на сумму %.2f %s", code, total, currency))
}

func (n *Notifier) CheckinCharges(reservationCode string, minutesLate int, extraKm, total float64) {
	if total <= 0 {
		return
	}
	n.send(fmt.Sprintf(
		"Возврат по брони %s: опоздание %d мин, перепробег %.0f км, доначисление %.2f",
		reservationCode, minutesLate, extraKm, total,
	))
}
