package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/pinata-sdk/pinata-go/internal/api"
	"github.com/pinata-sdk/pinata-go/internal/httpx"
	"github.com/pinata-sdk/pinata-go/pkg/apierr"
	"github.com/pinata-sdk/pinata-go/pkg/model"
	"go.uber.org/zap"
)

const (
	defaultJSONName = "json"
	defaultURLName  = "url_upload"
)

// UploadFile pins the content of r under the given file name.
func (c *Client) UploadFile(ctx context.Context, name string, r io.Reader, opts *model.UploadOptions) (*model.PinResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apierr.Validation("file name is required")
	}
	if r == nil {
		return nil, apierr.Validation("file content is required")
	}
	return c.uploadMultipart(ctx, "file", "sdk/file", name, r, opts)
}

// UploadJSON pins v as a JSON document. The document name defaults to "json".
func (c *Client) UploadJSON(ctx context.Context, v any, opts *model.UploadOptions) (*model.PinResponse, error) {
	if opts == nil {
		opts = &model.UploadOptions{}
	}
	body, err := httpx.JSONBody(struct {
		Content  any                  `json:"pinataContent"`
		Options  model.PinataOptions  `json:"pinataOptions"`
		Metadata model.PinataMetadata `json:"pinataMetadata"`
	}{
		Content:  v,
		Options:  pinataOptions(opts),
		Metadata: pinataMetadata(opts, defaultJSONName),
	})
	if err != nil {
		return nil, apierr.Wrap("json", err)
	}

	var out model.PinResponse
	err = c.transport.DoJSON(ctx, api.Call{
		Op:          "json",
		Source:      "sdk/json",
		Method:      http.MethodPost,
		Path:        pinJSONPath,
		Body:        body,
		ContentType: httpx.ContentTypeJSON,
		JWT:         opts.Keys,
	}, &out)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("pinned json", zap.String("cid", out.IpfsHash))
	return &out, nil
}

// UploadURL downloads src and pins it as a file. The file name defaults to
// "url_upload".
func (c *Client) UploadURL(ctx context.Context, src string, opts *model.UploadOptions) (*model.PinResponse, error) {
	if strings.TrimSpace(src) == "" {
		return nil, apierr.Validation("source URL is required")
	}
	data, err := c.reader.ReadURL(ctx, src)
	if err != nil {
		return nil, apierr.Wrap("url", err)
	}

	name := defaultURLName
	if opts != nil && opts.Metadata != nil && opts.Metadata.Name != "" {
		name = opts.Metadata.Name
	}
	return c.uploadMultipart(ctx, "url", "sdk/url", name, bytes.NewReader(data), opts)
}

func (c *Client) uploadMultipart(ctx context.Context, op, source, name string, r io.Reader, opts *model.UploadOptions) (*model.PinResponse, error) {
	if opts == nil {
		opts = &model.UploadOptions{}
	}

	body, contentType, err := multipartBody(name, r, opts)
	if err != nil {
		return nil, apierr.Wrap(op, err)
	}

	var out model.PinResponse
	err = c.transport.DoJSON(ctx, api.Call{
		Op:          op,
		Source:      source,
		Method:      http.MethodPost,
		Path:        pinFilePath,
		Body:        body,
		ContentType: contentType,
		JWT:         opts.Keys,
	}, &out)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("pinned file", zap.String("name", name), zap.String("cid", out.IpfsHash))
	return &out, nil
}

// multipartBody encodes the file part followed by the pinataOptions and
// pinataMetadata JSON fields.
func multipartBody(name string, r io.Reader, opts *model.UploadOptions) ([]byte, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", err
	}

	options, err := json.Marshal(pinataOptions(opts))
	if err != nil {
		return nil, "", err
	}
	if err := w.WriteField("pinataOptions", string(options)); err != nil {
		return nil, "", err
	}

	metadata, err := json.Marshal(pinataMetadata(opts, name))
	if err != nil {
		return nil, "", err
	}
	if err := w.WriteField("pinataMetadata", string(metadata)); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func pinataOptions(opts *model.UploadOptions) model.PinataOptions {
	return model.PinataOptions{
		CIDVersion: opts.CIDVersion,
		GroupID:    opts.GroupID,
	}
}

func pinataMetadata(opts *model.UploadOptions, defaultName string) model.PinataMetadata {
	md := model.PinataMetadata{Name: defaultName}
	if opts.Metadata != nil {
		if opts.Metadata.Name != "" {
			md.Name = opts.Metadata.Name
		}
		md.KeyValues = opts.Metadata.KeyValues
	}
	return md
}
