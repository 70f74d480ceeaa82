package impl

import (
	"bytes"
	"html"
	"html/template"
	"net/url"
	"regexp"
	"strings"

	"sarahkyoga/config"
	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/domain/service"
)

var newsletterTemplate = template.Must(template.New("newsletter").Parse(`<!DOCTYPE html>
<html><body style="margin:0;padding:0;background-color:{{.Style.BackgroundColor}};">
<div style="max-width:640px;margin:0 auto;padding:24px;font-family:{{.Style.FontFamily}};font-size:{{.Style.FontSize}};text-align:{{.Style.TextAlign}};color:{{.Style.TextColor}};">
<h1 style="color:{{.Style.AccentColor}};">{{.Title}}</h1>
{{.Content}}
{{if .UnsubscribeURL}}<p style="font-size:12px;"><a href="{{.UnsubscribeURL}}" style="color:{{.Style.AccentColor}};">Unsubscribe</a></p>{{end}}
</div>
</body></html>`))

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

var defaultNewsletterStyle = entity.NewsletterStyle{
	FontFamily:      "Georgia, serif",
	FontSize:        "16px",
	TextAlign:       "left",
	TextColor:       "#333333",
	BackgroundColor: "#ffffff",
	AccentColor:     "#7a5c3e",
}

// newsletterRenderer turns a newsletter into an email for one recipient.
type newsletterRenderer struct {
	publicBaseURL string
}

func newNewsletterRenderer(cfg *config.Config) *newsletterRenderer {
	r := &newsletterRenderer{}
	if cfg != nil {
		r.publicBaseURL = strings.TrimRight(cfg.HTTP.PublicBaseURL, "/")
	}

	return r
}

func (r *newsletterRenderer) message(newsletter *entity.Newsletter, to string) *service.EmailMessage {
	unsubscribeURL := ""
	if r.publicBaseURL != "" {
		unsubscribeURL = r.publicBaseURL + "/newsletter/unsubscribe?email=" + url.QueryEscape(to)
	}

	return &service.EmailMessage{
		To:      to,
		Subject: newsletter.Title,
		Text:    plainText(newsletter, unsubscribeURL),
		HTML:    r.html(newsletter, unsubscribeURL),
	}
}

func (r *newsletterRenderer) html(newsletter *entity.Newsletter, unsubscribeURL string) string {
	data := struct {
		Title          string
		Content        template.HTML
		Style          entity.NewsletterStyle
		UnsubscribeURL string
	}{
		Title:          newsletter.Title,
		Content:        template.HTML(newsletter.Content), //nolint:gosec // composed by admins
		Style:          withDefaultStyle(newsletter.Style),
		UnsubscribeURL: unsubscribeURL,
	}

	var buf bytes.Buffer
	if err := newsletterTemplate.Execute(&buf, data); err != nil {
		return newsletter.Content
	}

	return buf.String()
}

func plainText(newsletter *entity.Newsletter, unsubscribeURL string) string {
	body := html.UnescapeString(htmlTagPattern.ReplaceAllString(newsletter.Content, " "))
	body = strings.Join(strings.Fields(body), " ")

	text := newsletter.Title + "\n\n" + body + "\n"
	if unsubscribeURL != "" {
		text += "\nUnsubscribe: " + unsubscribeURL + "\n"
	}

	return text
}

func withDefaultStyle(style entity.NewsletterStyle) entity.NewsletterStyle {
	if style.FontFamily == "" {
		style.FontFamily = defaultNewsletterStyle.FontFamily
	}
	if style.FontSize == "" {
		style.FontSize = defaultNewsletterStyle.FontSize
	}
	if style.TextAlign == "" {
		style.TextAlign = defaultNewsletterStyle.TextAlign
	}
	if style.TextColor == "" {
		style.TextColor = defaultNewsletterStyle.TextColor
	}
	if style.BackgroundColor == "" {
		style.BackgroundColor = defaultNewsletterStyle.BackgroundColor
	}
	if style.AccentColor == "" {
		style.AccentColor = defaultNewsletterStyle.AccentColor
	}

	return style
}
