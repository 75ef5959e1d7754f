package notify

import (
	"fmt"
	"strings"
	"time"

	"care-booking/internal/data/entity"
)

type statusStyle struct {
	bg      string
	text    string
	message string
}

var statusStyles = map[entity.BookingStatus]statusStyle{
	entity.BookingStatusPending: {
		bg:      "#fef3c7",
		text:    "#d97706",
		message: "Your booking is being processed. We will update you soon.",
	},
	entity.BookingStatusConfirmed: {
		bg:      "#d1fae5",
		text:    "#059669",
		message: "Our caregiver will arrive at your location as scheduled.",
	},
	entity.BookingStatusCompleted: {
		bg:      "#dbeafe",
		text:    "#2563eb",
		message: "Thank you for using Care.xyz! We hope you had a great experience.",
	},
	entity.BookingStatusCancelled: {
		bg:      "#fee2e2",
		text:    "#dc2626",
		message: "Your booking has been cancelled. If you have any questions, please contact us.",
	},
}

func renderStatusUpdateEmail(booking *entity.Booking, newStatus entity.BookingStatus) string {
	style, ok := statusStyles[newStatus]
	if !ok {
		style = statusStyles[entity.BookingStatusPending]
	}

	var b strings.Builder
	writeHeader(&b, "Booking Status Update")
	fmt.Fprintf(&b, `<h2 style="color:#1f2937;text-align:center;">Booking Status Updated</h2>`)
	fmt.Fprintf(&b, `<div style="text-align:center;margin:30px 0;">
		<span style="display:inline-block;background-color:%s;color:%s;padding:12px 30px;border-radius:30px;font-size:18px;font-weight:600;">%s</span>
	</div>`, style.bg, style.text, newStatus)
	writeBookingTable(&b, booking)
	fmt.Fprintf(&b, `<p style="color:#6b7280;text-align:center;margin:20px 0 0 0;">%s</p>`, style.message)
	writeFooter(&b)
	return b.String()
}

func renderInvoiceEmail(booking *entity.Booking) string {
	var b strings.Builder
	writeHeader(&b, "Booking Invoice")
	fmt.Fprintf(&b, `<h2 style="color:#1f2937;text-align:center;">Thank you, %s!</h2>`, booking.UserName)
	fmt.Fprintf(&b, `<p style="color:#6b7280;text-align:center;">Your booking has been received and is pending confirmation.</p>`)
	writeBookingTable(&b, booking)
	fmt.Fprintf(&b, `<p style="color:#6b7280;text-align:center;">Booking reference: %s</p>`, booking.ID.String())
	writeFooter(&b)
	return b.String()
}

func writeHeader(b *strings.Builder, title string) {
	fmt.Fprintf(b, `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body style="margin:0;padding:0;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;background-color:#f5f5f5;">
<table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f5f5f5;padding:40px 20px;"><tr><td align="center">
<table width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:16px;overflow:hidden;">
<tr><td style="background:linear-gradient(135deg,#0d9488 0%%,#0f766e 100%%);padding:30px 40px;text-align:center;">
<h1 style="color:#ffffff;margin:0;font-size:24px;">Care<span style="color:#fb923c;">.xyz</span></h1>
</td></tr>
<tr><td style="padding:40px;">`, title)
}

func writeBookingTable(b *strings.Builder, booking *entity.Booking) {
	unit := "hour(s)"
	if booking.DurationUnit == entity.DurationUnitDays {
		unit = "day(s)"
	}

	fmt.Fprintf(b, `<div style="background-color:#f9fafb;border-radius:12px;padding:20px;margin:20px 0;">
<table width="100%%">
<tr><td style="color:#6b7280;padding:8px 0;">Service:</td><td style="color:#1f2937;font-weight:600;text-align:right;">%s</td></tr>
<tr><td style="color:#6b7280;padding:8px 0;">Duration:</td><td style="color:#1f2937;text-align:right;">%d %s</td></tr>
<tr><td style="color:#6b7280;padding:8px 0;">Location:</td><td style="color:#1f2937;text-align:right;">%s, %s, %s</td></tr>
<tr><td style="color:#6b7280;padding:8px 0;">Amount:</td><td style="color:#0d9488;font-weight:600;text-align:right;">&#2547;%.0f</td></tr>
</table>
</div>`,
		booking.ServiceName,
		booking.Duration, unit,
		booking.Location.Area, booking.Location.City, booking.Location.Division,
		booking.TotalCost,
	)
}

func writeFooter(b *strings.Builder) {
	fmt.Fprintf(b, `</td></tr>
<tr><td style="background-color:#f9fafb;padding:20px;text-align:center;border-top:1px solid #e5e7eb;">
<p style="color:#9ca3af;font-size:12px;margin:0;">&copy; %d Care.xyz. All rights reserved.</p>
</td></tr>
</table>
</td></tr></table>
</body>
</html>`, time.Now().Year())
}
