package main

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"kasir/pkg/barcode"
	"kasir/pkg/basket"
	"kasir/pkg/ocr"
	"kasir/pkg/price"
)

// Price lookup by barcode is unimplemented; decoded items get this fixed
// placeholder price until a catalog exists.
const placeholderPrice = price.Amount(999)

var (
	sessions   = newSessionStore()
	recognizer ocr.Recognizer
)

func setupRoutes(r *gin.Engine) {
	r.GET("/healthz", healthHandler)
	r.POST("/session", sessionHandler)
	authGroup := r.Group("")
	authGroup.Use(sessionMiddleware())
	authGroup.POST("/scan/price", scanPriceHandler)
	authGroup.POST("/scan/cancel", cancelScanHandler)
	authGroup.POST("/scan/barcode", scanBarcodeHandler)
	authGroup.POST("/items", addItemHandler)
	authGroup.GET("/basket", listBasketHandler)
	authGroup.DELETE("/basket/items/:index", removeItemHandler)
	authGroup.GET("/basket/totals", totalsHandler)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// sessionHandler exchanges the operator PIN for a session token with a
// fresh, empty basket.
func sessionHandler(c *gin.Context) {
	var req struct {
		PIN string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := VerifyPIN(req.PIN); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid pin"})
		return
	}
	sess := sessions.Create()
	token, err := issueSessionToken(sess.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		sid, err := parseSessionToken(authHeader[7:])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		sess, ok := sessions.Get(sid)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			c.Abort()
			return
		}
		c.Set("session", sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *Session {
	v, _ := c.Get("session")
	return v.(*Session)
}

// saveUploadToTemp writes the multipart file to a temp path the OCR and
// barcode pipelines can read. Caller removes it.
func saveUploadToTemp(c *gin.Context) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", err
	}
	if file.Size > 5*1024*1024 {
		return "", errors.New("file too large (max 5MB)")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".png"
	}
	tmpFile, err := os.CreateTemp("", "frame-*"+ext)
	if err != nil {
		return "", err
	}
	tmp := tmpFile.Name()
	_ = tmpFile.Close()
	if err := c.SaveUploadedFile(file, tmp); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}

// scanPriceHandler runs a captured frame through preprocess, recognition
// and price extraction, then appends the item to the session basket. At
// most one recognition per session is in flight; a cancel issued while the
// engine runs makes the finished result land in the bin instead.
func scanPriceHandler(c *gin.Context) {
	sess := currentSession(c)
	gen, ok := sess.BeginScan()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "scan already in progress"})
		return
	}
	defer sess.FinishScan()

	tmp, err := saveUploadToTemp(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer os.Remove(tmp)

	amt, txt, err := ocr.ExtractPriceFromImage(tmp, recognizer)
	switch {
	case errors.Is(err, price.ErrNoPrice):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no_price_found", "fallback": "manual", "text": txt.Value})
		return
	case errors.Is(err, ocr.ErrRecognition):
		c.JSON(http.StatusBadGateway, gin.H{"error": "recognition_failure", "fallback": "manual"})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := c.PostForm("name")
	if name == "" {
		name = "scanned item"
	}
	it := basket.NewItem(name, amt)
	if !sess.CommitScan(gen, it) {
		logrus.WithField("session", sess.ID).Info("stale scan result discarded")
		c.JSON(http.StatusGone, gin.H{"error": "scan_cancelled"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": it, "confidence": txt.Confidence})
}

// cancelScanHandler is called when the camera view is dismissed.
func cancelScanHandler(c *gin.Context) {
	currentSession(c).CancelScan()
	c.JSON(http.StatusOK, gin.H{"message": "scan cancelled"})
}

// scanBarcodeHandler decodes a barcode frame and appends an item with the
// placeholder price. Failure is retryable.
func scanBarcodeHandler(c *gin.Context) {
	sess := currentSession(c)
	tmp, err := saveUploadToTemp(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer os.Remove(tmp)

	img, err := imaging.Open(tmp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image"})
		return
	}
	code, err := barcode.DecodeFrame(img)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "barcode_not_found", "retry": true})
		return
	}
	it := basket.NewItem("barcode "+code, placeholderPrice)
	sess.AddItem(it)
	c.JSON(http.StatusOK, gin.H{"item": it, "code": code})
}

// addItemHandler is the manual-entry fallback.
func addItemHandler(c *gin.Context) {
	sess := currentSession(c)
	var req struct {
		Name  string `json:"name" binding:"required"`
		Price string `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amt, err := price.ParseManual(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_manual_input", "fallback": "reprompt"})
		return
	}
	it := basket.NewItem(req.Name, amt)
	sess.AddItem(it)
	c.JSON(http.StatusOK, gin.H{"item": it})
}

func listBasketHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": currentSession(c).Items()})
}

func removeItemHandler(c *gin.Context) {
	sess := currentSession(c)
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}
	if err := sess.RemoveItem(idx); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": sess.Items()})
}

// totalsHandler derives the bill. The discount percent is clamped here, at
// the point of entry; the basket trusts its caller.
func totalsHandler(c *gin.Context) {
	sess := currentSession(c)
	discount, err := strconv.ParseFloat(c.DefaultQuery("discount", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "discount must be numeric"})
		return
	}
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}
	taxRate, err := strconv.ParseFloat(c.DefaultQuery("tax", "0"), 64)
	if err != nil || taxRate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tax must be a non-negative number"})
		return
	}
	totals := sess.Totals(discount, taxRate)
	c.JSON(http.StatusOK, gin.H{"totals": totals, "display": totals.Display()})
}
