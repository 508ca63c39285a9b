package api

import (
	"context"
	"io"
	"net/http"

	"github.com/dmitrijs2005/tutorias/internal/client/models"
)

const configurationPath = "/api/configuracion"

type Configuration struct {
	c Doer
}

func (c *Configuration) CurrentStage(ctx context.Context) (models.StageConfig, error) {
	return get[models.StageConfig](ctx, c.c, configurationPath, nil)
}

func (c *Configuration) UpdateStage(ctx context.Context, stage int) (models.StageConfig, error) {
	return send[models.StageConfig](ctx, c.c, http.MethodPut, configurationPath, models.StageConfig{Stage: stage})
}

// UploadIntegralTemplate replaces the PDF template of the integral report.
func (c *Configuration) UploadIntegralTemplate(ctx context.Context, filename string, r io.Reader) (models.Message, error) {
	return upload(ctx, c.c, configurationPath+"/upload-template/integral", filename, r)
}

func (c *Configuration) ResetIntegralTemplate(ctx context.Context) (models.Message, error) {
	return send[models.Message](ctx, c.c, http.MethodPost, configurationPath+"/reset-template/integral", nil)
}
