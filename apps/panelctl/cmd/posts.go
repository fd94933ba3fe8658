package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/minhtan/hostpanel/pkg/papi/schemas"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Manage legacy post listings",
}

func postID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		log.Fatalf("post id must be an integer: %q", arg)
	}
	return id
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		posts, err := c.ListPosts(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(posts)
	},
}

var postsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a post by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		post, err := c.GetPost(cmd.Context(), postID(args[0]))
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(post)
	},
}

var postsCreateCmd = &cobra.Command{
	Use:   "create -f <file>",
	Short: "Create a post from a JSON file ('-' for stdin)",
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.CreatePostRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		post, err := c.CreatePost(cmd.Context(), req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(post)
	},
}

var postsUpdateCmd = &cobra.Command{
	Use:   "update <id> -f <file>",
	Short: "Update a post from a JSON file ('-' for stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var req schemas.UpdatePostRequest
		if err := readInto(resourceFile, &req); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		req.ID = postID(args[0])
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		post, err := c.UpdatePost(cmd.Context(), req)
		if err != nil {
			exitIfSdkError(err)
		}
		printJSON(post)
	},
}

var postsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if err := c.DeletePost(cmd.Context(), postID(args[0])); err != nil {
			exitIfSdkError(err)
		}
		fmt.Println("deleted")
	},
}

func init() {
	rootCmd.AddCommand(postsCmd)
	postsCmd.AddCommand(postsListCmd, postsGetCmd, postsCreateCmd, postsUpdateCmd, postsDeleteCmd)
	addFileFlag(postsCreateCmd, postsUpdateCmd)
}
