package mailer

import "html/template"

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<h2>Your booking is confirmed</h2>
<p>Ticket code: <strong>{{.TicketCode}}</strong></p>
<p>{{.Carrier}} {{.ServiceNumber}}<br/>
{{.Origin}} &rarr; {{.Destination}}<br/>
{{.Date}} {{.DepartureTime}}{{if .Class}} &middot; {{.Class}}{{end}}</p>
<table>
  <tr><th align="left">Passenger</th><th align="left">Seat</th></tr>
  {{range .Passengers}}<tr><td>{{.Passenger.Name}}</td><td>{{.Seat}}</td></tr>
  {{end}}
</table>
<table>
  <tr><td>Base fare</td><td align="right">{{printf "%.2f" .Fare.Base}}</td></tr>
  {{if .Fare.Fees}}<tr><td>Fees</td><td align="right">{{printf "%.2f" .Fare.Fees}}</td></tr>{{end}}
  <tr><td>GST ({{.Fare.GSTRate}}%)</td><td align="right">{{printf "%.2f" .Fare.GST}}</td></tr>
  {{if .Fare.Discount}}<tr><td>Discount</td><td align="right">-{{printf "%.2f" .Fare.Discount}}</td></tr>{{end}}
  <tr><td><strong>Total</strong></td><td align="right"><strong>{{printf "%.2f" .Fare.Total}}</strong></td></tr>
</table>
`))

var otpTemplate = template.Must(template.New("otp").Parse(`
<p>Your verification code is <strong>{{.Code}}</strong>.</p>
<p>It expires in {{.Minutes}} minutes.</p>
`))

var notificationTemplate = template.Must(template.New("notification").Parse(`
<h3>{{.Subject}}</h3>
<p>{{.Message}}</p>
`))
