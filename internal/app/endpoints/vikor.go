package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/dto"
)

var errInvalidType = errors.New("invalid type")

type VikorService interface {
	Calculate(ctx context.Context, req dto.CalculateRequest) (dto.CalculateResponse, error)
	DefaultTerms(ctx context.Context) dto.DefaultTermsResponse
	ValidateTerms(ctx context.Context, req dto.TermsRequest) dto.ValidateTermsResponse
	SaveTerms(ctx context.Context, req dto.TermsRequest) (dto.SaveTermsResponse, error)
	ResizeMatrix(ctx context.Context, req dto.ResizeRequest) dto.ResizeResponse
}

type VikorEndpoint struct {
	Calculate     endpoint.Endpoint
	DefaultTerms  endpoint.Endpoint
	ValidateTerms endpoint.Endpoint
	SaveTerms     endpoint.Endpoint
	ResizeMatrix  endpoint.Endpoint
}

func MakeVikorEndpoint(service VikorService) VikorEndpoint {
	return VikorEndpoint{
		Calculate:     makeCalculateEndpoint(service),
		DefaultTerms:  makeDefaultTermsEndpoint(service),
		ValidateTerms: makeValidateTermsEndpoint(service),
		SaveTerms:     makeSaveTermsEndpoint(service),
		ResizeMatrix:  makeResizeMatrixEndpoint(service),
	}
}

func makeCalculateEndpoint(service VikorService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CalculateRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.Calculate(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("vikor service: %w", err)
		}

		return resp, nil
	}
}

func makeDefaultTermsEndpoint(service VikorService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		return service.DefaultTerms(ctx), nil
	}
}

func makeValidateTermsEndpoint(service VikorService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TermsRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		return service.ValidateTerms(ctx, *request), nil
	}
}

func makeSaveTermsEndpoint(service VikorService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TermsRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.SaveTerms(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("vikor service: %w", err)
		}

		return resp, nil
	}
}

func makeResizeMatrixEndpoint(service VikorService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ResizeRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		return service.ResizeMatrix(ctx, *request), nil
	}
}
