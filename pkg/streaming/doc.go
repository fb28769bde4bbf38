/*
Package streaming groups feather's pull-based stream packages.

This package provides two streaming components:

  - stream: lazy, single-pass pipelines over a pull-based Producer
  - redislist: a Producer that pages through a Redis list

Basic usage:

	src, err := redislist.New(ctx, redislist.Config{Client: client, Key: "jobs"})
	if err != nil {
		return err
	}

	total := stream.Sum(stream.MapTo(src.Stream(), len))
	if err := src.Err(); err != nil {
		return err
	}

Pipelines do no work until a terminal operation or an explicit Next pulls
from them, and each pull moves at most one element through every stage.
*/
package streaming
