package send

import (
	"net/url"
	"strings"
)

// MessageURI builds an sms: URI carrying the rendered document as the
// message body.
func MessageURI(phone, body string) string {
	return "sms:" + phone + "?body=" + escape(body)
}

// MailURI builds a mailto: URI with the subject and rendered document
// prefilled.
func MailURI(address, subject, body string) string {
	return "mailto:" + address + "?subject=" + escape(subject) + "&body=" + escape(body)
}

// escape percent-encodes for a URI query component. url.QueryEscape uses
// form encoding, which turns spaces into "+"; mail and messaging apps
// expect "%20".
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
