package entity

// Clone returns a deep copy of the descriptor.
func (c ChainDescriptor) Clone() ChainDescriptor {
	out := c
	out.ENSTLDs = cloneStrings(c.ENSTLDs)
	out.Formatters = cloneStrings(c.Formatters)
	out.Serializers = cloneStrings(c.Serializers)
	out.SourceID = clonePtr(c.SourceID)
	out.Testnet = clonePtr(c.Testnet)
	out.BlockTime = clonePtr(c.BlockTime)

	if c.RPCURLs != nil {
		out.RPCURLs = make(map[string]RPCEndpoints, len(c.RPCURLs))
		for k, v := range c.RPCURLs {
			out.RPCURLs[k] = RPCEndpoints{HTTP: cloneStrings(v.HTTP), WebSocket: cloneStrings(v.WebSocket)}
		}
	}
	if c.BlockExplorers != nil {
		out.BlockExplorers = make(map[string]BlockExplorer, len(c.BlockExplorers))
		for k, v := range c.BlockExplorers {
			out.BlockExplorers[k] = v
		}
	}
	if c.Contracts != nil {
		out.Contracts = make(map[string]ContractDeployment, len(c.Contracts))
		for k, v := range c.Contracts {
			d := ContractDeployment{Address: v.Address, BlockCreated: clonePtr(v.BlockCreated)}
			if v.Sources != nil {
				d.Sources = make(map[uint64]Contract, len(v.Sources))
				for sid, sc := range v.Sources {
					d.Sources[sid] = Contract{Address: sc.Address, BlockCreated: clonePtr(sc.BlockCreated)}
				}
			}
			out.Contracts[k] = d
		}
	}
	if c.Custom != nil {
		out.Custom = cloneValue(c.Custom).(map[string]any)
	}
	if c.Fees != nil {
		out.Fees = &FeeHooks{
			BaseFeeMultiplier:     clonePtr(c.Fees.BaseFeeMultiplier),
			DefaultPriorityFeeWei: clonePtr(c.Fees.DefaultPriorityFeeWei),
		}
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneValue copies the container types produced by JSON and YAML decoders.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}
