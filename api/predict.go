package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediassist/mediassist-api/consts"
	"github.com/mediassist/mediassist-api/predictor"
)

type predictFormRequest struct {
	Features []float64 `json:"features"`
}

// predictForm runs a one-shot prediction from a full feature vector.
func (s *Server) predictForm(c *gin.Context) {
	disease := c.Param("disease")
	if !consts.ValidDisease(disease) {
		abortWithError(c, http.StatusBadRequest, errorMessageInvalidDisease)
		return
	}

	var body predictFormRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest,
			(&predictor.FeatureLengthError{Expected: len(consts.FieldsFor(disease))}).Error(), err)
		return
	}

	isHighRisk, err := s.registry.Predict(disease, body.Features)
	if err != nil {
		var lengthErr *predictor.FeatureLengthError
		if errors.As(err, &lengthErr) {
			abortWithError(c, http.StatusBadRequest, lengthErr.Error())
			return
		}

		log.WithError(err).WithField("disease", disease).Error("prediction failed")
		abortWithError(c, http.StatusInternalServerError, errorMessagePredictionFailed)
		return
	}

	risk := "low"
	if isHighRisk {
		risk = "high"
	}

	c.JSON(http.StatusOK, gin.H{
		"isHighRisk":  isHighRisk,
		"explanation": fmt.Sprintf("Based on the provided data, there is a %s risk of %s.", risk, disease),
	})
}
