package server

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// RepositoryClient calls a remote repository service with a bearer token.
type RepositoryClient struct {
	questionsDue     *connect.Client[QuestionsDueRequest, QuestionsDueResponse]
	getLearningState *connect.Client[GetLearningStateRequest, GetLearningStateResponse]
}

// NewRepositoryClient creates a client for the service mounted at baseURL.
func NewRepositoryClient(httpClient connect.HTTPClient, baseURL, token string) *RepositoryClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts := []connect.ClientOption{
		connect.WithCodec(jsonCodec{}),
		connect.WithInterceptors(bearerInterceptor(token)),
	}
	return &RepositoryClient{
		questionsDue:     connect.NewClient[QuestionsDueRequest, QuestionsDueResponse](httpClient, baseURL+QuestionsDueProcedure, opts...),
		getLearningState: connect.NewClient[GetLearningStateRequest, GetLearningStateResponse](httpClient, baseURL+GetLearningStateProcedure, opts...),
	}
}

func bearerInterceptor(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient && token != "" {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}

func (c *RepositoryClient) QuestionsDue(ctx context.Context, req *QuestionsDueRequest) (*QuestionsDueResponse, error) {
	resp, err := c.questionsDue.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func (c *RepositoryClient) GetLearningState(ctx context.Context, req *GetLearningStateRequest) (*GetLearningStateResponse, error) {
	resp, err := c.getLearningState.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}
