package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Object       string                 `json:"object,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	LocalPoint   [3]float64             `json:"localPoint"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Depth        float64                `json:"depth"`
	Color        [3]float64             `json:"color"`
	Shading      map[string]interface{} `json:"shading,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func colorHex(c core.Color) string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

func colorArray(c core.Color) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

// extractMaterialInfo lists the Phong parameters of a material
func (s *Server) extractMaterialInfo(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"color":               colorHex(mat.Color),
		"diffuseColor":        colorHex(mat.DiffuseColor),
		"specularColor":       colorHex(mat.SpecularColor),
		"ambientColor":        colorHex(mat.AmbientColor),
		"diffuseCoefficient":  mat.DiffuseCoefficient,
		"specularCoefficient": mat.SpecularCoefficient,
		"ambientCoefficient":  mat.AmbientCoefficient,
		"shininess":           mat.Shininess,
	}
}

// findObject returns the scene object with the given name
func findObject(sceneObj *scene.Scene, name string) *scene.Object {
	for _, obj := range sceneObj.Objects() {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// inspectPixel traces the centre sub-pixel of output pixel (pixelX, pixelY)
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) (renderer.Inspection, error) {
	camera, err := sceneObj.Camera()
	if err != nil {
		return renderer.Inspection{}, err
	}

	ss := camera.Config().SuperSampling
	column := pixelX*ss + ss/2
	row := pixelY*ss + ss/2

	rt := renderer.NewRaytracer(camera, renderer.WithFarClipping(sceneObj.ClipFar))
	pl, dl := sceneObj.Lights()
	return rt.InspectPixel(sceneObj.Objects(), column, row, pl, dl), nil
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	inspectReq := &RenderRequest{}

	// Parse common scene parameters using shared function
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}

	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("Pixel (%d, %d) outside %dx%d image", pixelX, pixelY, inspectReq.Width, inspectReq.Height),
		})
		return
	}

	inspection, err := inspectPixel(sceneObj, pixelX, pixelY)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if !inspection.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	response := InspectResponse{
		Hit:          true,
		Object:       inspection.Object,
		GeometryType: inspection.Kind,
		Point:        [3]float64{inspection.WorldPoint.X, inspection.WorldPoint.Y, inspection.WorldPoint.Z},
		LocalPoint:   [3]float64{inspection.LocalPoint.X, inspection.LocalPoint.Y, inspection.LocalPoint.Z},
		Normal:       [3]float64{inspection.Normal.X, inspection.Normal.Y, inspection.Normal.Z},
		Distance:     inspection.T,
		Depth:        inspection.Depth,
		Color:        colorArray(inspection.Color),
		Shading: map[string]interface{}{
			"diffuse":            colorArray(inspection.Shading.Diffuse),
			"specular":           colorArray(inspection.Shading.Specular),
			"ambient":            colorArray(inspection.Shading.Ambient),
			"base":               colorArray(inspection.Shading.Base),
			"pointLightShadowed": inspection.Shading.PointLightShadowed,
			"sunShadowed":        inspection.Shading.SunShadowed,
		},
	}
	if obj := findObject(sceneObj, inspection.Object); obj != nil {
		response.Properties = s.extractMaterialInfo(obj.Material)
	}

	writeJSON(w, http.StatusOK, response)
}
