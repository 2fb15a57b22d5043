package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// ErrClassifierUnavailable reports that the image classifier could not
// be initialized or invoked. Callers surface it as an explicit failure
// state, distinct from "classified fine but matched nothing".
var ErrClassifierUnavailable = errors.New("image classifier unavailable")

// Prediction is one classifier guess: a label and its probability in
// [0,1]. Sequences are ordered by descending probability.
type Prediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// ClassifierState is the observable lifecycle of the lazily-initialized
// classifier capability.
type ClassifierState string

const (
	ClassifierUninitialized ClassifierState = "uninitialized"
	ClassifierInitializing  ClassifierState = "initializing"
	ClassifierReady         ClassifierState = "ready"
	ClassifierFailed        ClassifierState = "failed"
)

// Classifier turns an image into label predictions. Implementations may
// initialize lazily; State lets callers query a failed init without
// triggering another load.
type Classifier interface {
	DetectLabels(ctx context.Context, imageBase64 string) ([]Prediction, error)
	State() ClassifierState
}

// RekognitionClassifier backs Classifier with AWS Rekognition. The AWS
// client is built on first use; concurrent callers join the single
// in-flight initialization instead of each loading their own config.
type RekognitionClassifier struct {
	mu      sync.Mutex
	state   ClassifierState
	client  *rekognition.Client
	initErr error
	done    chan struct{} // closed when initialization settles
}

func NewRekognitionClassifier() *RekognitionClassifier {
	return &RekognitionClassifier{state: ClassifierUninitialized}
}

func (r *RekognitionClassifier) State() ClassifierState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// getClient returns the shared Rekognition client, kicking off the
// one-time initialization if nobody has yet. A failed init is sticky:
// later callers observe the same error rather than retrying.
func (r *RekognitionClassifier) getClient(ctx context.Context) (*rekognition.Client, error) {
	r.mu.Lock()
	switch r.state {
	case ClassifierReady:
		c := r.client
		r.mu.Unlock()
		return c, nil
	case ClassifierFailed:
		err := r.initErr
		r.mu.Unlock()
		return nil, err
	case ClassifierUninitialized:
		r.state = ClassifierInitializing
		r.done = make(chan struct{})
		go r.initialize()
	}
	done := r.done
	r.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initErr != nil {
		return nil, r.initErr
	}
	return r.client, nil
}

// initialize runs off the caller's context on purpose: the shared client
// should not be aborted because the first requester gave up.
func (r *RekognitionClassifier) initialize() {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.state = ClassifierFailed
		r.initErr = fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	} else {
		r.state = ClassifierReady
		r.client = rekognition.NewFromConfig(cfg)
	}
	close(r.done)
}

// DetectLabels returns the top label predictions for a base64-encoded
// image, with or without a data-URI prefix.
func (r *RekognitionClassifier) DetectLabels(ctx context.Context, imageBase64 string) ([]Prediction, error) {
	data, err := decodeImage(imageBase64)
	if err != nil {
		return nil, err
	}

	client, err := r.getClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(10),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	preds := make([]Prediction, 0, len(out.Labels))
	for _, l := range out.Labels {
		if l.Name == nil || l.Confidence == nil {
			continue
		}
		preds = append(preds, Prediction{
			Label:       *l.Name,
			Probability: float64(*l.Confidence) / 100,
		})
	}
	return preds, nil
}

func decodeImage(imageBase64 string) ([]byte, error) {
	payload := imageBase64
	if strings.HasPrefix(imageBase64, "data:") {
		idx := strings.Index(imageBase64, ",")
		if idx < 0 {
			return nil, errors.New("invalid data URI")
		}
		payload = imageBase64[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return data, nil
}
