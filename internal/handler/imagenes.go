package handler

import (
	"net/http"

	"github.com/Luchitowick/Terrible-Piolas/internal/apierror"
	"github.com/Luchitowick/Terrible-Piolas/internal/dto"
	"github.com/Luchitowick/Terrible-Piolas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ImagenesHandler struct{ svc service.ImagenService }

func NewImagenesHandler(svc service.ImagenService) *ImagenesHandler {
	return &ImagenesHandler{svc: svc}
}

// Subir POST /v1/productos/:id/imagenes — multipart: campo "imagen" + orden,
// es_principal.
func (h *ImagenesHandler) Subir(c *gin.Context) {
	productoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}

	var req dto.SubirImagenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulario inválido: "+err.Error()))
		return
	}
	if !runValidation(c, &req) {
		return
	}

	fh, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el archivo 'imagen'"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}
	defer f.Close()

	resp, svcErr := h.svc.Subir(c.Request.Context(), productoID, fh.Filename, f, req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/productos/:id/imagenes
func (h *ImagenesHandler) Listar(c *gin.Context) {
	productoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.ListarPorProducto(c.Request.Context(), productoID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarcarPrincipal PATCH /v1/productos/:id/imagenes/:imagenID/principal
func (h *ImagenesHandler) MarcarPrincipal(c *gin.Context) {
	productoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	imagenID, err := uuid.Parse(c.Param("imagenID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de imagen inválido"))
		return
	}
	if svcErr := h.svc.MarcarPrincipal(c.Request.Context(), productoID, imagenID); svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Eliminar DELETE /v1/productos/:id/imagenes/:imagenID
func (h *ImagenesHandler) Eliminar(c *gin.Context) {
	productoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	imagenID, err := uuid.Parse(c.Param("imagenID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de imagen inválido"))
		return
	}
	if svcErr := h.svc.Eliminar(c.Request.Context(), productoID, imagenID); svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
