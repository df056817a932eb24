package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"text/tabwriter"
	"time"

	esapi "github.com/esbridge/esbridge/api/es"
	"github.com/esbridge/esbridge/client"
	"github.com/esbridge/esbridge/internal/awserr"
	"github.com/esbridge/esbridge/internal/config"
	"github.com/esbridge/esbridge/pkg/poll"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

const yamlFormat = "yaml"

const (
	waitPollInterval = 5 * time.Second
	waitTimeout      = 30 * time.Minute
)

var (
	clientConfigFile string
	resourceKinds    = map[string]string{
		"domain":            "",
		"version":           "",
		"compatibleversion": "",
	}
	// Domain names follow the upstream constraint: lowercase start, then
	// lowercase letters, digits, and hyphens.
	resourceNameRegex = regexp.MustCompile(`^[a-z][a-z0-9\-]+$`)
	legalOutputTypes  = []string{yamlFormat}
)

func init() {
	clientConfigFile = config.ClientConfigFile()
}

func main() {
	command := NewEsbridgeCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseAndValidateKindName(arg string) (string, string, error) {
	kind, name, _ := strings.Cut(arg, "/")
	kind = singular(kind)
	if _, ok := resourceKinds[kind]; !ok {
		return "", "", fmt.Errorf("invalid resource kind: %s", kind)
	}
	if len(name) > 0 && !resourceNameRegex.MatchString(name) {
		return "", "", fmt.Errorf("invalid domain name: %s", name)
	}
	return kind, name, nil
}

func singular(kind string) string {
	if strings.HasSuffix(kind, "s") {
		return kind[:len(kind)-1]
	}
	return kind
}

func newClient() (*client.Client, error) {
	c, err := client.NewFromConfigFile(clientConfigFile)
	if err != nil {
		return nil, fmt.Errorf("creating client: %v", err)
	}
	return c, nil
}

func NewEsbridgeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "esbridge",
		Short: "esbridge controls domains through the legacy management dialect",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(NewCmdGet())
	cmd.AddCommand(NewCmdCreate())
	cmd.AddCommand(NewCmdDelete())
	cmd.AddCommand(NewCmdTag())
	cmd.AddCommand(NewCmdTags())
	cmd.AddCommand(NewCmdUntag())
	return cmd
}

type GetOptions struct {
	EngineType string
	Output     string
	MaxResults int32
	NextToken  string
}

func NewCmdGet() *cobra.Command {
	o := &GetOptions{EngineType: "", MaxResults: 0, NextToken: ""}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "get domains, versions, or upgrade targets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, name, err := parseAndValidateKindName(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Lookup("engine-type").Changed {
				if kind != "domain" {
					return fmt.Errorf("engine-type can only be specified when listing domains")
				}
				if len(name) > 0 {
					return fmt.Errorf("cannot specify engine-type together with a domain name")
				}
			}
			if kind != "version" && (cmd.Flags().Lookup("max-results").Changed || cmd.Flags().Lookup("next-token").Changed) {
				return fmt.Errorf("max-results and next-token can only be specified when listing versions")
			}
			if cmd.Flags().Lookup("output").Changed && !lo.Contains(legalOutputTypes, o.Output) {
				return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
			}
			if o.MaxResults < 0 {
				return fmt.Errorf("max-results must be greater than 0")
			}
			var engineType *string
			if cmd.Flags().Lookup("engine-type").Changed {
				engineType = &o.EngineType
			}
			var maxResults *int32
			if cmd.Flags().Lookup("max-results").Changed {
				maxResults = &o.MaxResults
			}
			var nextToken *string
			if cmd.Flags().Lookup("next-token").Changed {
				nextToken = &o.NextToken
			}
			return RunGet(kind, name, engineType, o.Output, maxResults, nextToken)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&o.EngineType, "engine-type", "e", o.EngineType, "engine type selector for listing domains (Elasticsearch or OpenSearch)")
	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output, "output format (yaml)")
	cmd.Flags().Int32Var(&o.MaxResults, "max-results", o.MaxResults, "the maximum number of versions returned in the list response")
	cmd.Flags().StringVar(&o.NextToken, "next-token", o.NextToken, "query more versions starting from the value of the 'NextToken' field in the previous response")
	return cmd
}

type CreateOptions struct {
	Version       string
	InstanceType  string
	InstanceCount int32
	DryRun        bool
	Wait          bool
}

func NewCmdCreate() *cobra.Command {
	o := &CreateOptions{Version: "", InstanceType: "", InstanceCount: 0, DryRun: false, Wait: false}

	cmd := &cobra.Command{
		Use:   "create domain/NAME",
		Short: "create a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, name, err := parseAndValidateKindName(args[0])
			if err != nil {
				return err
			}
			if kind != "domain" {
				return fmt.Errorf("only domains can be created, got: %s", kind)
			}
			if len(name) == 0 {
				return fmt.Errorf("must specify a domain name, e.g. domain/my-domain")
			}

			request := &esapi.CreateElasticsearchDomainRequest{DomainName: &name}
			if cmd.Flags().Lookup("version").Changed {
				request.ElasticsearchVersion = &o.Version
			}
			if cmd.Flags().Lookup("instance-type").Changed || cmd.Flags().Lookup("instance-count").Changed {
				request.ElasticsearchClusterConfig = &esapi.ElasticsearchClusterConfig{}
				if cmd.Flags().Lookup("instance-type").Changed {
					request.ElasticsearchClusterConfig.InstanceType = &o.InstanceType
				}
				if cmd.Flags().Lookup("instance-count").Changed {
					request.ElasticsearchClusterConfig.InstanceCount = &o.InstanceCount
				}
			}
			return RunCreate(request, o.DryRun, o.Wait)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&o.Version, "version", "v", o.Version, "engine version, e.g. 7.10 or OpenSearch_1.1")
	cmd.Flags().StringVarP(&o.InstanceType, "instance-type", "t", o.InstanceType, "data node instance type, e.g. m5.large.elasticsearch")
	cmd.Flags().Int32VarP(&o.InstanceCount, "instance-count", "c", o.InstanceCount, "number of data nodes")
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", o.DryRun, "only print the request that would be sent, without sending it")
	cmd.Flags().BoolVarP(&o.Wait, "wait", "w", o.Wait, "wait until the domain has finished processing changes")
	return cmd
}

type DeleteOptions struct {
	Wait bool
}

func NewCmdDelete() *cobra.Command {
	o := &DeleteOptions{Wait: false}

	cmd := &cobra.Command{
		Use:   "delete domain/NAME",
		Short: "delete a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, name, err := parseAndValidateKindName(args[0])
			if err != nil {
				return err
			}
			if kind != "domain" {
				return fmt.Errorf("only domains can be deleted, got: %s", kind)
			}
			if len(name) == 0 {
				return fmt.Errorf("must specify a domain name, e.g. domain/my-domain")
			}
			return RunDelete(name, o.Wait)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&o.Wait, "wait", "w", o.Wait, "wait until the domain is gone")
	return cmd
}

func NewCmdTag() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag ARN KEY=VALUE...",
		Short: "attach tags to a domain",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := make([]esapi.Tag, 0, len(args)-1)
			for _, pair := range args[1:] {
				key, value, found := strings.Cut(pair, "=")
				if !found || key == "" {
					return fmt.Errorf("invalid tag %q, expected KEY=VALUE", pair)
				}
				tags = append(tags, esapi.Tag{Key: lo.ToPtr(key), Value: lo.ToPtr(value)})
			}
			return RunTag(args[0], tags)
		},
		SilenceUsage: true,
	}
	return cmd
}

func NewCmdTags() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags ARN",
		Short: "list the tags attached to a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunTags(args[0])
		},
		SilenceUsage: true,
	}
	return cmd
}

func NewCmdUntag() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "untag ARN KEY...",
		Short: "detach tags from a domain",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunUntag(args[0], args[1:])
		},
		SilenceUsage: true,
	}
	return cmd
}

func RunGet(kind, name string, engineType *string, output string, maxResults *int32, nextToken *string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	switch kind {
	case "domain":
		if len(name) > 0 {
			response, err := c.DescribeElasticsearchDomain(context.Background(), name)
			if err != nil {
				return fmt.Errorf("reading domain/%s: %v", name, err)
			}
			return printYAML(response.DomainStatus)
		}
		response, err := c.ListDomainNames(context.Background(), engineType)
		if err != nil {
			return fmt.Errorf("listing domains: %v", err)
		}
		if output == yamlFormat {
			return printYAML(response)
		}
		printDomainsTable(response)
	case "version":
		response, err := c.ListElasticsearchVersions(context.Background(), maxResults, nextToken)
		if err != nil {
			return fmt.Errorf("listing versions: %v", err)
		}
		if output == yamlFormat {
			return printYAML(response)
		}
		for _, version := range response.ElasticsearchVersions {
			fmt.Println(version)
		}
		if response.NextToken != nil {
			fmt.Printf("\nmore results available, pass --next-token %s\n", *response.NextToken)
		}
	case "compatibleversion":
		var domainName *string
		if len(name) > 0 {
			domainName = &name
		}
		response, err := c.GetCompatibleElasticsearchVersions(context.Background(), domainName)
		if err != nil {
			return fmt.Errorf("listing compatible versions: %v", err)
		}
		if output == yamlFormat {
			return printYAML(response)
		}
		printCompatibleVersionsTable(response)
	default:
		return fmt.Errorf("unsupported resource kind: %s", kind)
	}

	return nil
}

func RunCreate(request *esapi.CreateElasticsearchDomainRequest, dryRun, wait bool) error {
	if dryRun {
		fmt.Printf("creating domain/%s (dry run only)\n", *request.DomainName)
		return printYAML(request)
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	response, err := c.CreateElasticsearchDomain(context.Background(), request)
	if err != nil {
		return fmt.Errorf("creating domain/%s: %v", *request.DomainName, err)
	}
	if wait {
		name := *request.DomainName
		fmt.Printf("waiting for domain/%s to become active\n", name)
		if err := waitForDomainActive(c, name); err != nil {
			return fmt.Errorf("waiting for domain/%s: %v", name, err)
		}
	}
	return printYAML(response.DomainStatus)
}

func RunDelete(name string, wait bool) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	response, err := c.DeleteElasticsearchDomain(context.Background(), name)
	if err != nil {
		return fmt.Errorf("deleting domain/%s: %v", name, err)
	}
	if wait {
		if err := waitForDomainGone(c, name); err != nil {
			return fmt.Errorf("waiting for domain/%s to be deleted: %v", name, err)
		}
		fmt.Printf("domain/%s deleted\n", name)
		return nil
	}
	if response.DomainStatus != nil && response.DomainStatus.Deleted != nil && *response.DomainStatus.Deleted {
		fmt.Printf("domain/%s deleted\n", name)
	} else {
		fmt.Printf("domain/%s deletion in progress\n", name)
	}
	return nil
}

func waitForDomainActive(c *client.Client, name string) error {
	return poll.Wait(context.Background(), waitPollInterval, waitTimeout, func(ctx context.Context) (bool, error) {
		response, err := c.DescribeElasticsearchDomain(ctx, name)
		if err != nil {
			return false, err
		}
		status := response.DomainStatus
		if status == nil {
			return false, nil
		}
		return status.Processing == nil || !*status.Processing, nil
	})
}

func waitForDomainGone(c *client.Client, name string) error {
	return poll.Wait(context.Background(), waitPollInterval, waitTimeout, func(ctx context.Context) (bool, error) {
		_, err := c.DescribeElasticsearchDomain(ctx, name)
		var apiErr *awserr.Error
		if errors.As(err, &apiErr) && apiErr.Type == awserr.CodeResourceNotFound {
			return true, nil
		}
		return false, err
	})
}

func RunTag(arn string, tags []esapi.Tag) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	if err := c.AddTags(context.Background(), arn, tags); err != nil {
		return fmt.Errorf("adding tags: %v", err)
	}
	fmt.Printf("added %d tag(s)\n", len(tags))
	return nil
}

func RunTags(arn string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	response, err := c.ListTags(context.Background(), arn)
	if err != nil {
		return fmt.Errorf("listing tags: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, '\t', 0)
	fmt.Fprintln(w, "KEY\tVALUE")
	for _, tag := range response.TagList {
		fmt.Fprintf(w, "%s\t%s\n", lo.FromPtr(tag.Key), lo.FromPtr(tag.Value))
	}
	return w.Flush()
}

func RunUntag(arn string, keys []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	if err := c.RemoveTags(context.Background(), arn, keys); err != nil {
		return fmt.Errorf("removing tags: %v", err)
	}
	fmt.Printf("removed %d tag(s)\n", len(keys))
	return nil
}

func printYAML(v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializing response: %v", err)
	}
	fmt.Printf("%s\n", string(out))
	return nil
}

func printDomainsTable(response *esapi.ListDomainNamesResponse) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, '\t', 0)
	fmt.Fprintln(w, "NAME\tENGINE-TYPE")
	for _, info := range response.DomainNames {
		engineType := "-"
		if info.EngineType != nil {
			engineType = *info.EngineType
		}
		fmt.Fprintf(w, "%s\t%s\n", lo.FromPtr(info.DomainName), engineType)
	}
	_ = w.Flush()
}

func printCompatibleVersionsTable(response *esapi.GetCompatibleElasticsearchVersionsResponse) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, '\t', 0)
	fmt.Fprintln(w, "SOURCE\tTARGETS")
	for _, entry := range response.CompatibleElasticsearchVersions {
		fmt.Fprintf(w, "%s\t%s\n", lo.FromPtr(entry.SourceVersion), strings.Join(entry.TargetVersions, ", "))
	}
	_ = w.Flush()
}
