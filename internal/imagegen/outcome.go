package imagegen

import "fmt"

// Outcome is the result of one Generate call. It is one of NoCredential,
// NoImage, Fault or Success, and is flattened to text only through Text.
type Outcome interface {
	Text() string
	outcome()
}

// NoCredential means the API key was not configured; no upstream call was made.
type NoCredential struct {
	Key string
}

// NoImage means the upstream call succeeded without any image/* part.
type NoImage struct {
	Parts int
}

// Fault wraps any failure raised while calling the upstream model.
type Fault struct {
	Err error
}

// Success carries the first image part returned by the model.
type Success struct {
	Image Image
}

func (NoCredential) outcome() {}
func (NoImage) outcome()      {}
func (Fault) outcome()        {}
func (Success) outcome()      {}

func (NoCredential) Text() string {
	return "Error: Gemini API key not configured in the MCP server properties."
}

func (NoImage) Text() string {
	return "Error: No image data returned from the API."
}

func (f Fault) Text() string {
	msg := "unknown error"
	if f.Err != nil {
		msg = f.Err.Error()
	}
	return fmt.Sprintf("An error occurred while generating the image: %s", msg)
}

func (s Success) Text() string {
	return "Image generated successfully. Here is the base64 encoded image data: " + s.Image.DataURI()
}
