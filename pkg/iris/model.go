package iris

import (
	"encoding/json"
)

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type StartUploadRequest struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
}

type StartUploadResponse struct {
	FileID    string `json:"fileId"`
	UploadURL string `json:"uploadUrl"`
}

// Schema holds a metadata schema definition. A schema is sent over the wire
// as a JSON string, but callers may supply it either as a raw string or as a
// structured mapping. Both forms are normalized to one canonical encoding
// (compact JSON with sorted keys) when the Schema is created, so equivalent
// inputs produce identical wire bytes.
type Schema struct {
	value string
}

func SchemaString(value string) Schema {
	return Schema{value: canonicalSchema(value)}
}

func SchemaObject(value map[string]any) (Schema, error) {
	data, err := json.Marshal(value)

	if err != nil {
		return Schema{}, err
	}

	return Schema{value: string(data)}, nil
}

func (s Schema) String() string {
	return s.value
}

func (s Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

func (s *Schema) UnmarshalJSON(data []byte) error {
	var value string

	if err := json.Unmarshal(data, &value); err == nil {
		s.value = canonicalSchema(value)
		return nil
	}

	var object map[string]any

	if err := json.Unmarshal(data, &object); err != nil {
		return err
	}

	canonical, err := json.Marshal(object)

	if err != nil {
		return err
	}

	s.value = string(canonical)

	return nil
}

// Free-text schemas ("Extract: title, author, date") pass through untouched.
func canonicalSchema(value string) string {
	var object map[string]any

	if err := json.Unmarshal([]byte(value), &object); err != nil {
		return value
	}

	data, _ := json.Marshal(object)

	return string(data)
}

type MetadataSchema struct {
	ID     string `json:"id"`
	Schema Schema `json:"schema"`
}

type MetadataStrategy struct {
	Schemas     []MetadataSchema `json:"schemas,omitempty"`
	InferSchema *bool            `json:"inferSchema,omitempty"`
}

type StartExtractionRequest struct {
	FileID string `json:"fileId"`
	Type   string `json:"type,omitempty"`

	ChunkSize *int `json:"chunkSize,omitempty"`

	Metadata            *MetadataStrategy `json:"metadata,omitempty"`
	ParsingInstructions string            `json:"parsingInstructions,omitempty"`
}

type StartExtractionResponse struct {
	Message      string `json:"message"`
	ExtractionID string `json:"extractionId"`
}

type ExtractionStatus struct {
	Ready bool    `json:"ready"`
	Data  *Result `json:"data,omitempty"`
}

type Result struct {
	Success bool `json:"success"`

	Text   string   `json:"text,omitempty"`
	Chunks []string `json:"chunks,omitempty"`

	Metadata       string `json:"metadata,omitempty"`
	MetadataSchema string `json:"metadataSchema,omitempty"`

	ChunksMetadata []*string `json:"chunksMetadata,omitempty"`
	ChunksSchema   []*string `json:"chunksSchema,omitempty"`

	Error string `json:"error,omitempty"`
}

type ExtractionOptions struct {
	ChunkSize *int

	MetadataSchemas     []MetadataSchema
	InferMetadataSchema *bool

	ParsingInstructions string
}

func (o *ExtractionOptions) request(fileID string) StartExtractionRequest {
	infer := true

	if o.InferMetadataSchema != nil {
		infer = *o.InferMetadataSchema
	}

	return StartExtractionRequest{
		FileID: fileID,
		Type:   "iris",

		ChunkSize: o.ChunkSize,

		Metadata: &MetadataStrategy{
			Schemas:     o.MetadataSchemas,
			InferSchema: &infer,
		},

		ParsingInstructions: o.ParsingInstructions,
	}
}
