package schema

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/composable"
)

// Apply guards fn with schemas for its input and environment. The resulting
// unit takes raw values, validates both, and only calls fn when both are
// valid. Otherwise it fails with every input issue as an *rop.InputError
// followed by every environment issue as an *rop.EnvironmentError.
//
// A nil input schema accepts only a nil input, a nil environment schema
// accepts only objects. A nil environment value is replaced with an empty
// map[string]any.
func Apply[I, E, Out any](fn composable.Fn2[I, E, Out], input ParserSchema[I], env ParserSchema[E]) composable.Fn2[any, any, Out] {
	if input == nil {
		input = Undefined[I]()
	}
	if env == nil {
		env = Object[E]()
	}

	return func(ctx context.Context, rawInput, rawEnv any) rop.Result[Out] {
		if rawEnv == nil {
			rawEnv = map[string]any{}
		}

		var inRes ParseResult[I]
		var envRes ParseResult[E]
		var g errgroup.Group
		g.Go(func() error {
			envRes = safeParse(ctx, env, rawEnv)
			return nil
		})
		g.Go(func() error {
			inRes = safeParse(ctx, input, rawInput)
			return nil
		})
		_ = g.Wait()

		if !inRes.Success || !envRes.Success {
			return rop.Failure[Out](issuesToErrors(inRes, envRes)...)
		}
		return fn.Run(ctx, inRes.Data, envRes.Data)
	}
}

// WithSchema builds a schema-guarded unit straight from a handler.
func WithSchema[I, E, Out any](input ParserSchema[I], env ParserSchema[E],
	handler func(ctx context.Context, input I, env E) (Out, error)) composable.Fn2[any, any, Out] {
	return Apply(composable.Of2(handler), input, env)
}

// With fixes the schemas first and takes the handler later.
func With[I, E, Out any](input ParserSchema[I], env ParserSchema[E]) func(
	handler func(ctx context.Context, input I, env E) (Out, error)) composable.Fn2[any, any, Out] {

	return func(handler func(ctx context.Context, input I, env E) (Out, error)) composable.Fn2[any, any, Out] {
		return WithSchema(input, env, handler)
	}
}

func issuesToErrors[I, E any](inRes ParseResult[I], envRes ParseResult[E]) []error {
	errs := make([]error, 0, len(inRes.Issues)+len(envRes.Issues))

	if !inRes.Success {
		if len(inRes.Issues) == 0 {
			errs = append(errs, rop.NewInputError("Invalid input"))
		}
		for _, issue := range inRes.Issues {
			errs = append(errs, rop.NewInputError(issue.Message, issue.Path...))
		}
	}

	if !envRes.Success {
		if len(envRes.Issues) == 0 {
			errs = append(errs, rop.NewEnvironmentError("Invalid environment"))
		}
		for _, issue := range envRes.Issues {
			errs = append(errs, rop.NewEnvironmentError(issue.Message, issue.Path...))
		}
	}

	return errs
}

func safeParse[T any](ctx context.Context, s ParserSchema[T], v any) (res ParseResult[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Invalid[T](Issue{Message: rop.ToError(r).Error()})
		}
	}()
	return s.ParseAsync(ctx, v)
}
