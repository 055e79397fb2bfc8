package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3Storage_URL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "aws default",
			cfg:  Config{Bucket: "cvs", Region: "eu-west-1"},
			want: "https://cvs.s3.eu-west-1.amazonaws.com/resumes/a.pdf",
		},
		{
			name: "compatible endpoint",
			cfg:  Config{Bucket: "cvs", Region: "auto", Endpoint: "http://localhost:9000/", AccessKey: "k", SecretKey: "s"},
			want: "http://localhost:9000/cvs/resumes/a.pdf",
		},
		{
			name: "public base url",
			cfg:  Config{Bucket: "cvs", Region: "auto", BaseURL: "https://cdn.example.com/"},
			want: "https://cdn.example.com/resumes/a.pdf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewS3Storage(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.URL("resumes/a.pdf"))
		})
	}
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(Config{Region: "us-east-1"})
	assert.Error(t, err)
}
