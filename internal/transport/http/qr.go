package http

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// handleQR serves a PNG QR code pointing participants at the registration
// page, for projecting at the venue.
func (h *Handler) handleQR(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	png, err := qrcode.Encode(h.publicURL+"/register", qrcode.Medium, qrSize)
	if err != nil {
		h.log.Error("Failed to encode QR code", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to encode QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
