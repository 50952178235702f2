package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookieName = "flash"

// FlashCodec stores one-shot user-facing messages in an HMAC-signed cookie.
// The signature only prevents tampering; the message itself is not secret.
type FlashCodec struct {
	secret []byte
}

func NewFlashCodec(secret string) *FlashCodec {
	return &FlashCodec{secret: []byte(secret)}
}

func (c *FlashCodec) sign(msg []byte) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(msg)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// set queues msg to be shown on the next page render.
func (c *FlashCodec) set(w http.ResponseWriter, msg string) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(msg))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded + "." + c.sign([]byte(msg)),
		Path:     "/",
		HttpOnly: true,
	})
}

// pop returns the pending flash message, clearing the cookie. It returns ""
// when no message is set or the cookie fails signature verification.
func (c *FlashCodec) pop(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:   flashCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	encoded, sig, found := strings.Cut(cookie.Value, ".")
	if !found {
		return ""
	}
	msg, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	if !hmac.Equal([]byte(c.sign(msg)), []byte(sig)) {
		return ""
	}
	return string(msg)
}
