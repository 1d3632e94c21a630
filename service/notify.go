package service

import (
	"context"
	"fmt"
	"html"

	"rentcar/config"
	"rentcar/models"

	"gopkg.in/gomail.v2"
)

// BookingNotifier 新预订通知
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *models.Booking) error
}

// NopNotifier 不发送任何通知
type NopNotifier struct{}

func (NopNotifier) NotifyBookingCreated(context.Context, *models.Booking) error { return nil }

// EmailNotifier 通过 SMTP 把新预订发送给运营邮箱
type EmailNotifier struct {
	cfg  config.EmailConfig
	send func(m *gomail.Message) error
}

// NewBookingNotifier 邮件未启用或未配置收件人时返回 NopNotifier
func NewBookingNotifier(cfg config.EmailConfig) BookingNotifier {
	if !cfg.Enabled || cfg.NotifyTo == "" {
		return NopNotifier{}
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &EmailNotifier{cfg: cfg, send: func(m *gomail.Message) error { return d.DialAndSend(m) }}
}

// NotifyBookingCreated 发送新预订邮件
func (n *EmailNotifier) NotifyBookingCreated(ctx context.Context, b *models.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := n.buildMessage(b)
	if err := n.send(m); err != nil {
		return fmt.Errorf("发送预订通知失败: %w", err)
	}
	return nil
}

func (n *EmailNotifier) buildMessage(b *models.Booking) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.cfg.Username, n.cfg.From))
	m.SetHeader("To", n.cfg.NotifyTo)
	m.SetHeader("Subject", fmt.Sprintf("[RentCar] New booking #%d: %s", b.ID, b.CarName))
	m.SetBody("text/html", generateBookingEmailBody(b))
	return m
}

// generateBookingEmailBody 生成预订通知邮件内容
func generateBookingEmailBody(b *models.Booking) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>🚗 New booking #%d</h2>
    <table cellpadding="6" style="border-collapse: collapse;">
        <tr><td><strong>Car</strong></td><td>%s</td></tr>
        <tr><td><strong>Pick-up</strong></td><td>%s, %s</td></tr>
        <tr><td><strong>Return</strong></td><td>%s, %s</td></tr>
        <tr><td><strong>Phone</strong></td><td>%s</td></tr>
    </table>
    <p style="color: #666;">RentCar</p>
</body>
</html>
`,
		b.ID,
		html.EscapeString(b.CarName),
		html.EscapeString(b.PlaceOfRental), b.RentalDate.Format("2006-01-02"),
		html.EscapeString(b.PlaceOfReturn), b.ReturnDate.Format("2006-01-02"),
		html.EscapeString(b.PhoneNumber),
	)
}
